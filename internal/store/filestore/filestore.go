package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/tasks/internal/log"
	"github.com/idilsaglam/tasks/internal/store"
)

// File-backed snapshot storage. Single file, human-readable, portable.
// No locking; fine for a local single-user CLI.

type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

type Store struct {
	path   string
	format Format
}

func New(path string, format Format) (*Store, error) {
	switch format {
	case JSON, YAML:
	default:
		return nil, fmt.Errorf("unsupported snapshot format %q", format)
	}
	return &Store{path: path, format: format}, nil
}

// Load returns an empty snapshot when the file does not exist yet.
func (s *Store) Load() (store.Snapshot, error) {
	var snap store.Snapshot
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug(log.CatStore, "No snapshot file", "path", s.path)
			return snap, nil
		}
		return snap, fmt.Errorf("read file: %w", err)
	}
	if err := s.unmarshal(b, &snap); err != nil {
		return store.Snapshot{}, fmt.Errorf("%s unmarshal: %w", s.format, err)
	}
	log.Debug(log.CatStore, "Loaded snapshot", "path", s.path, "users", len(snap.Users))
	return snap, nil
}

// Save writes to a temp file in the same directory and renames it over the
// target, so a failed write never truncates the existing snapshot.
func (s *Store) Save(snap store.Snapshot) error {
	b, err := s.marshal(snap)
	if err != nil {
		return fmt.Errorf("%s marshal: %w", s.format, err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	log.Debug(log.CatStore, "Saved snapshot", "path", s.path, "users", len(snap.Users))
	return nil
}

func (s *Store) Close() error { return nil }

func (s *Store) marshal(snap store.Snapshot) ([]byte, error) {
	if s.format == YAML {
		return yaml.Marshal(snap)
	}
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func (s *Store) unmarshal(b []byte, snap *store.Snapshot) error {
	if s.format == YAML {
		return yaml.Unmarshal(b, snap)
	}
	return json.Unmarshal(b, snap)
}
