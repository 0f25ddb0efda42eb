// Package session persists the current login as a single JSON file.
// A missing file means anonymous. The store is read once at startup,
// written on login and removed on log-off.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"inkwell/app/models"
)

// Session is the persisted login state
type Session struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// Store holds the current session in memory and mirrors it to disk
type Store struct {
	path string

	mu  sync.Mutex
	cur *Session
}

// NewStore creates a Store backed by the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted session, if any. A missing file is not an
// error; it leaves the store anonymous.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.cur = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read session file: %v", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return fmt.Errorf("failed to parse session file: %v", err)
	}
	s.cur = &sess
	return nil
}

// Current returns the active session, or false when anonymous
func (s *Store) Current() (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cur == nil {
		return nil, false
	}
	out := *s.cur
	return &out, true
}

// Save persists a new login and makes it current
func (s *Store) Save(user *models.User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &Session{User: *user, Token: token}
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %v", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %v", err)
	}

	s.cur = sess
	return nil
}

// Clear removes the persisted session and returns to anonymous
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %v", err)
	}
	s.cur = nil
	return nil
}
