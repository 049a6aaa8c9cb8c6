package main

// Action tags the decision for one Plex watchlist item.
type Action int

const (
	// ActionRemove: the item is on the watched list, drop it from Plex.
	ActionRemove Action = iota
	// ActionPresent: the item is on the Letterboxd watchlist and already on Plex.
	ActionPresent
	// ActionAdd: the item matches neither list; Letterboxd does not know it.
	ActionAdd
)

func (a Action) String() string {
	switch a {
	case ActionRemove:
		return "remove"
	case ActionPresent:
		return "present"
	case ActionAdd:
		return "add"
	default:
		return "unknown"
	}
}

// Outcome is the classification of exactly one watchlist item.
// IMDBID is set only for ActionPresent; Item only for ActionRemove/ActionAdd.
type Outcome struct {
	Action Action
	IMDBID string
	Item   WatchlistItem
}

// classifyItem decides what to do with one current Plex watchlist item given
// the Letterboxd watchlist and watched sets. The item's GUIDs are scanned in
// order; non-IMDB identifiers are skipped. A watched match wins over a
// watchlist match: a film on both lists has been seen, so it still comes off
// the Plex watchlist. An item with no decodable or matching identifier is
// classified ActionAdd, which only keeps it out of the other two buckets.
func classifyItem(item WatchlistItem, desired, watched MovieSet) Outcome {
	for _, imdbID := range itemIMDBIDs(item) {
		if watched.Contains(imdbID) {
			return Outcome{Action: ActionRemove, Item: item}
		}

		if desired.Contains(imdbID) {
			return Outcome{Action: ActionPresent, IMDBID: imdbID}
		}
	}

	return Outcome{Action: ActionAdd, Item: item}
}
