// Package cas implements the build history store.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/freeze/internal/core/domain"
	"go.trai.ch/freeze/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildRecordStore = (*Store)(nil)

// Store implements ports.BuildRecordStore using a flat JSON file.
//
// The file is read on first use, never at construction, so a damaged history
// cannot keep the rest of the tool from starting.
type Store struct {
	path    string
	mu      sync.Mutex
	loaded  bool
	records []domain.BuildRecord
}

// NewStore creates a new BuildRecordStore backed by the file at the given path.
func NewStore(path string) *Store {
	return &Store{
		path: filepath.Clean(path),
	}
}

// load reads the history file once. The caller must hold the lock.
// A failed load is retried on the next call.
func (s *Store) load() error {
	if s.loaded {
		return nil
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.loaded = true
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read build history"), "path", s.path)
	}

	var records []domain.BuildRecord
	if len(data) > 0 {
		if err := json.Unmarshal(data, &records); err != nil {
			failure := zerr.Wrap(domain.ErrHistoryCorrupt, "failed to unmarshal build history")
			return zerr.With(zerr.With(failure, "path", s.path), "reason", err.Error())
		}
	}

	s.records = records
	s.loaded = true
	return nil
}

// save writes the records to disk. The caller must hold the lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal build history")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for build history"), "dir", dir)
	}

	// Write then rename so an interrupted run never leaves a truncated file.
	tmp := s.path + ".tmp"
	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write build history"), "path", tmp)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace build history"), "path", s.path)
	}

	return nil
}

// Append adds a record and persists the history.
// An unreadable history is left untouched and reported as an error.
func (s *Store) Append(record domain.BuildRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}

	s.records = append(s.records, record)
	return s.save()
}

// List returns all records, newest first.
func (s *Store) List() ([]domain.BuildRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}

	out := slices.Clone(s.records)
	slices.Reverse(out)
	return out, nil
}

// Reset forgets all records and removes the history file, whatever its contents.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	s.loaded = true
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove build history"), "path", s.path)
	}
	return nil
}
