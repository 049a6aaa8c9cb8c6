package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func newSyncCommand() *cli.Command {
	return &cli.Command{
		Name:  "sync",
		Usage: "Sync the Letterboxd watchlist to the Plex account watchlist",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"d"},
				Usage:   "classify and search without removing or adding anything",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable verbose logging",
			},
		},
		Action: runSync,
	}
}

func runSync(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	dryRun := cmd.Bool("dry-run")
	verbose := cmd.Bool("verbose")

	SetAppLogger(NewLogger(verbose))

	config, err := loadConfigFromFile(configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	app, err := NewApp(ctx, config, dryRun, verbose)
	if err != nil {
		return fmt.Errorf("create app: %w", err)
	}

	// Unsynced movies are a reported outcome, not a failure: the run still
	// exits zero as long as every phase completed.
	if _, err := app.Run(ctx); err != nil {
		return fmt.Errorf("run sync: %w", err)
	}

	return nil
}
