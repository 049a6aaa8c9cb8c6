package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func newStatusCommand() *cli.Command {
	return &cli.Command{
		Name:   "status",
		Usage:  "Show authentication and configuration status",
		Action: runStatus,
	}
}

func runStatus(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	SetAppLogger(NewLogger(cmd.Bool("verbose")))

	config, err := loadConfigFromFile(configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	tokenFile, err := LoadTokenFile(config.TokenFilePath)
	if err != nil {
		return err
	}

	switch {
	case config.Plex.Token != "":
		LogInfoSuccess(ctx, "Plex:       authenticated via config/environment token")
	case tokenFile.HasToken():
		LogInfoSuccess(ctx, "Plex:       authenticated via token file")
	default:
		LogWarn(ctx, "Plex:       not authenticated (run `letterboxd-plex-sync login`)")
	}

	if config.Letterboxd.Username != "" {
		LogInfoSuccess(ctx, "Letterboxd: user %s", config.Letterboxd.Username)
	} else {
		LogWarn(ctx, "Letterboxd: no username configured")
	}

	LogInfo(ctx, "Token file: %s", config.TokenFilePath)
	return nil
}
