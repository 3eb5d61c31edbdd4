// Package store implements a small, file-backed key/value cache.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	KeySensorPath = "sensorPath"
	KeyNestToken  = "nestToken"
)

// Store holds string values, persisted as a YAML document. Store is safe for concurrent use.
type Store struct {
	path   string
	values map[string]string
	lock   sync.RWMutex
}

// Open loads the store at path. A missing file results in an empty store.
func Open(path string) (*Store, error) {
	s := Store{path: path, values: make(map[string]string)}
	body, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &s, nil
		}
		return nil, fmt.Errorf("store: %w", err)
	}
	if err = yaml.Unmarshal(body, &s.values); err != nil {
		return nil, fmt.Errorf("store: %s: %w", path, err)
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	return &s, nil
}

func (s *Store) Get(key string) (string, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	value, ok := s.values[key]
	return value, ok
}

// Set stores the value and writes the store to disk. If the store can't be written, the previous value is kept.
func (s *Store) Set(key, value string) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	previous, ok := s.values[key]
	s.values[key] = value
	if err := s.save(); err != nil {
		if ok {
			s.values[key] = previous
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

// Token returns the stored Nest access token. It implements nest.TokenSource.
func (s *Store) Token() (string, bool) {
	token, ok := s.Get(KeyNestToken)
	return token, ok && token != ""
}

func (s *Store) save() error {
	body, err := yaml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err = os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("store: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, body, 0o600); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	return nil
}
