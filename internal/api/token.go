package api

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TokenStore keeps the backend token in a file under the config directory.
type TokenStore struct {
	path string
}

// NewTokenStore uses the given file path, or the default
// $XDG_CONFIG_HOME/questlog/token when empty.
func NewTokenStore(path string) (*TokenStore, error) {
	if path == "" {
		configHome := os.Getenv("XDG_CONFIG_HOME")
		if configHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("error finding home directory: %w", err)
			}
			configHome = filepath.Join(home, ".config")
		}
		path = filepath.Join(configHome, "questlog", "token")
	}
	return &TokenStore{path: path}, nil
}

// Save writes the token with owner-only permissions.
func (ts *TokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(ts.path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}
	if err := os.WriteFile(ts.path, []byte(token+"\n"), 0600); err != nil {
		return fmt.Errorf("error writing token file: %w", err)
	}
	return nil
}

// Load returns the stored token, or "" when none is stored.
func (ts *TokenStore) Load() (string, error) {
	data, err := os.ReadFile(ts.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("error reading token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Clear removes the stored token. Clearing an already-empty store is not an
// error.
func (ts *TokenStore) Clear() error {
	err := os.Remove(ts.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing token file: %w", err)
	}
	return nil
}
