package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"hrboard/internal/hr"
)

// Credentials is the persisted session state: the bearer token and the
// identity it was issued for. It survives restarts until explicit logout or
// a 401-triggered clear.
type Credentials struct {
	Token string  `yaml:"token"`
	User  hr.User `yaml:"user"`
}

// Persistence stores credentials across process restarts. Load returns
// (nil, nil) when nothing is persisted.
type Persistence interface {
	Load() (*Credentials, error)
	Save(*Credentials) error
	Clear() error
}

// FileStore persists credentials as a yaml file, created 0600.
type FileStore struct {
	Path string
}

// NewFileStore creates a FileStore at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (s *FileStore) Load() (*Credentials, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}
	var creds Credentials
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("parse session file: %w", err)
	}
	if creds.Token == "" {
		return nil, nil
	}
	return &creds, nil
}

func (s *FileStore) Save(creds *Credentials) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	data, err := yaml.Marshal(creds)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
