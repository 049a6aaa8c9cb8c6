package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// TokenFile is the on-disk record of the plex.tv token obtained through the
// PIN login flow. The client identifier is stored with the token because
// plex.tv associates tokens with the device that requested them.
type TokenFile struct {
	Token    string `json:"token"`
	ClientID string `json:"client_id"`
}

// LoadTokenFile reads a stored token. A missing file returns an empty
// TokenFile and no error: not being logged in is a normal state.
func LoadTokenFile(tokenFilePath string) (*TokenFile, error) {
	data, err := os.ReadFile(tokenFilePath)
	if os.IsNotExist(err) {
		return &TokenFile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading token file: %w", err)
	}

	var tf TokenFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing token file %s: %w", tokenFilePath, err)
	}

	return &tf, nil
}

// Save writes the token file with owner-only permissions.
func (tf *TokenFile) Save(tokenFilePath string) error {
	if !path.IsAbs(tokenFilePath) {
		return fmt.Errorf("token file path must be absolute: %s", tokenFilePath)
	}

	if err := os.MkdirAll(filepath.Dir(tokenFilePath), ConfigDirPerms); err != nil {
		return fmt.Errorf("creating token directory: %w", err)
	}

	data, err := json.MarshalIndent(tf, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding token file: %w", err)
	}

	if err := os.WriteFile(tokenFilePath, data, TokenFilePerms); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}

	return nil
}

// Remove deletes the token file. Removing an absent file is not an error.
func (tf *TokenFile) Remove(tokenFilePath string) error {
	err := os.Remove(tokenFilePath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing token file: %w", err)
	}
	return nil
}

// HasToken reports whether a token is stored.
func (tf *TokenFile) HasToken() bool {
	return tf.Token != ""
}
