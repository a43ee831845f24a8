package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/go-homedir"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultStatePath is where the CLI keeps its state unless configured otherwise.
const DefaultStatePath = "~/.config/itams/state.json"

type fileState struct {
	Token string `json:"jwt_token,omitempty"`
	Theme Theme  `json:"theme,omitempty"`
}

// FileStore persists State as a JSON file. Every change is written immediately.
type FileStore struct {
	mu    sync.Mutex
	path  string
	state fileState
}

// OpenFileStore loads the state file at path, expanding a leading "~". A missing
// file yields empty state.
func OpenFileStore(path string) (*FileStore, error) {
	if path == "" {
		path = DefaultStatePath
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand %s: %w", path, err)
	}

	s := &FileStore{path: expanded}
	b, err := os.ReadFile(expanded)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("read state: %w", err)
	}
	if len(b) > 0 {
		if err := json.Unmarshal(b, &s.state); err != nil {
			return nil, fmt.Errorf("parse state %s: %w", expanded, err)
		}
	}
	return s, nil
}

// Path returns the expanded location of the state file.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

func (s *FileStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Token = token
	return s.save()
}

func (s *FileStore) ClearToken() error {
	return s.SetToken("")
}

func (s *FileStore) Theme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ParseTheme(string(s.state.Theme))
}

func (s *FileStore) SetTheme(t Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Theme = t
	return s.save()
}

// save writes the state atomically. Callers hold mu.
func (s *FileStore) save() error {
	b, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace state: %w", err)
	}
	return nil
}
