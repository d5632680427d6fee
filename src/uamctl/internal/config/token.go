// Package config manages local uamctl state such as the cached session token.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// TokenData holds a cached session token and the server it belongs to
type TokenData struct {
	Token     string `json:"token"`
	ServerURL string `json:"server_url"`
	Email     string `json:"email,omitempty"`
}

// tokenFilePath returns the path to the token cache file
func tokenFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".uamctl", "token.json"), nil
}

// SaveToken persists the token to disk with restrictive permissions
func SaveToken(data *TokenData) error {
	path, err := tokenFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal token data: %w", err)
	}

	if err := os.WriteFile(path, content, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	return nil
}

// LoadToken reads the cached token from disk. Returns nil without error
// when no token has been saved yet.
func LoadToken() (*TokenData, error) {
	path, err := tokenFilePath()
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	var data TokenData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}

	return &data, nil
}

// ClearToken removes the cached token. Missing file is not an error.
func ClearToken() error {
	path, err := tokenFilePath()
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}

	return nil
}
