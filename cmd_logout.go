package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func newLogoutCommand() *cli.Command {
	return &cli.Command{
		Name:   "logout",
		Usage:  "Remove the stored plex.tv token",
		Action: runLogout,
	}
}

func runLogout(ctx context.Context, cmd *cli.Command) error {
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

	if !tokenFile.HasToken() {
		LogInfo(ctx, "Not authenticated, nothing to do")
		return nil
	}

	if err := tokenFile.Remove(config.TokenFilePath); err != nil {
		return err
	}

	LogInfoSuccess(ctx, "Removed token file %s", config.TokenFilePath)
	return nil
}
