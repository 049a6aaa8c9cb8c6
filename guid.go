package main

import "strings"

// extractIMDBID pulls the IMDB ID out of a Plex GUID string such as
// "imdb://tt0111161" or "imdb://tt0111161>...". Plex metadata sometimes
// carries trailing debris after the value; everything from the first '>' on
// is stripped. Returns false for any other namespace or a malformed string.
func extractIMDBID(guid string) (string, bool) {
	rest, ok := strings.CutPrefix(guid, IMDBGUIDPrefix)
	if !ok {
		return "", false
	}
	if i := strings.IndexByte(rest, '>'); i >= 0 {
		rest = rest[:i]
	}
	if rest == "" {
		return "", false
	}
	return rest, true
}

// itemIMDBIDs returns every decodable IMDB ID on an item, in GUID order.
// Most items carry at most one.
func itemIMDBIDs(item WatchlistItem) []string {
	var ids []string
	for _, guid := range item.GUIDs {
		if id, ok := extractIMDBID(guid); ok {
			ids = append(ids, id)
		}
	}
	return ids
}
