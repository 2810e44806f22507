// Package session owns the admin's login state: a bearer token persisted in
// a client-side file, read by every API call and checked by the command
// guard before a protected screen is rendered.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sigs.k8s.io/yaml"
)

// Session holds the bearer credential for the CampusHub API. The token is
// opaque to the backend exchange; the console additionally decodes its
// claims locally for the advisory guard check.
type Session struct {
	Token string `json:"token"`
	// Email is kept for display only; the token is the source of truth.
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`

	path string `json:"-"`
}

// Load reads the session file. A missing file yields an empty session, not
// an error; the guard turns that into a login prompt.
func Load(path string) (*Session, error) {
	s := &Session{path: path}
	contents, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading session file: %w", err)
	}
	if err := yaml.Unmarshal(contents, s); err != nil {
		return nil, fmt.Errorf("decoding session file: %w", err)
	}
	return s, nil
}

// Save writes the session to its file, creating the parent directory and
// keeping the file private to the user.
func (s *Session) Save() error {
	contents, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	if err := os.WriteFile(s.path, contents, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}

// Clear removes the persisted session. Clearing an absent session is fine.
func (s *Session) Clear() error {
	s.Token = ""
	s.Email = ""
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}

// SetPath rebinds the session to a file, used by tests.
func (s *Session) SetPath(path string) {
	s.path = path
}

// New returns an unsaved session bound to path.
func New(path, token, email string) *Session {
	return &Session{
		Token:     token,
		Email:     email,
		CreatedAt: time.Now(),
		path:      path,
	}
}
