// Package session holds the process-wide authentication state: the bearer
// token and the current user profile, persisted as a single JSON file so
// the CLI stays logged in between invocations.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"caltrack/internal/api"
)

type state struct {
	Token string    `json:"token"`
	User  *api.User `json:"user,omitempty"`
}

// Store is the single source of truth for auth state. Only SetAuth, SetUser
// and Clear write it; everything else reads.
type Store struct {
	mu   sync.RWMutex
	path string
	st   state
}

// Load opens the session file at path, starting empty when it is missing
// or unreadable. A broken session file means logged out, not a crash.
func Load(path string) *Store {
	s := &Store{path: path}
	b, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	_ = json.Unmarshal(b, &s.st)
	return s
}

// IsAuthenticated is true iff a token is present.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.Token
}

// User returns a copy of the current profile, or nil when absent.
func (s *Store) User() *api.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.st.User == nil {
		return nil
	}
	u := *s.st.User
	return &u
}

// SetAuth installs a new token and profile after login or register.
func (s *Store) SetAuth(token string, u api.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st = state{Token: token, User: &u}
	return s.persist()
}

// SetUser replaces the profile in place, keeping the token.
func (s *Store) SetUser(u api.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.User = &u
	return s.persist()
}

// Clear wipes the session on logout.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st = state{}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) persist() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(s.st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o600)
}
