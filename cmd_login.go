package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func newLoginCommand() *cli.Command {
	return &cli.Command{
		Name:   "login",
		Usage:  "Authenticate with plex.tv via the PIN link flow",
		Action: runLogin,
	}
}

func runLogin(ctx context.Context, cmd *cli.Command) error {
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

	if tokenFile.HasToken() {
		LogInfoSuccess(ctx, "Already authenticated (token file: %s)", config.TokenFilePath)
		LogInfo(ctx, "Run `letterboxd-plex-sync logout` first to re-authenticate")
		return nil
	}

	// Reuse the stored client identifier if a previous login left one
	// behind; plex.tv ties tokens to the requesting device.
	auth := NewPlexAuthenticator(config.Plex.PlexTVURL, tokenFile.ClientID)

	token, err := auth.Login(ctx)
	if err != nil {
		return fmt.Errorf("plex login: %w", err)
	}

	tokenFile.Token = token
	tokenFile.ClientID = auth.ClientID()
	if err := tokenFile.Save(config.TokenFilePath); err != nil {
		return err
	}

	LogInfoSuccess(ctx, "Token saved to %s", config.TokenFilePath)
	return nil
}
