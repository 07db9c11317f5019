// Package tokenstore persists Strava tokens between CLI runs.
package tokenstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/s0up4200/stravactl/strava"
)

// File stores a token as YAML in a single file readable only by its owner.
type File struct {
	path string
	mu   sync.Mutex
}

var _ strava.TokenStore = (*File)(nil)

// NewFile returns a store backed by path. A leading "~/" is expanded to the
// user's home directory.
func NewFile(path string) (*File, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if expanded == "" {
		return nil, fmt.Errorf("token path is empty")
	}
	return &File{path: expanded}, nil
}

// Path returns the resolved file location.
func (f *File) Path() string {
	return f.path
}

// Load reads the stored token. It returns strava.ErrNoToken when the file
// does not exist or holds no access token.
func (f *File) Load() (strava.Token, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return strava.Token{}, strava.ErrNoToken
	}
	if err != nil {
		return strava.Token{}, fmt.Errorf("error reading token file: %w", err)
	}

	var tok strava.Token
	if err := yaml.Unmarshal(data, &tok); err != nil {
		return strava.Token{}, fmt.Errorf("error parsing token file %s: %w", f.path, err)
	}
	if !tok.Valid() {
		return strava.Token{}, strava.ErrNoToken
	}
	return tok, nil
}

// Save writes the token, creating the parent directory if needed.
func (f *File) Save(tok strava.Token) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("error creating token directory: %w", err)
	}

	data, err := yaml.Marshal(tok)
	if err != nil {
		return fmt.Errorf("error encoding token: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("error writing token file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("error replacing token file: %w", err)
	}
	return nil
}

// Clear removes the token file. A missing file is not an error.
func (f *File) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error removing token file: %w", err)
	}
	return nil
}

// ExpandHome replaces a leading "~" with the current user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error resolving home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
