// Package credstore persists the session's durable key-value entries:
// the access token, the current user profile, and — while an
// impersonation is active — the original token and user. State lives in
// a single JSON file under the user's config directory. Corrupt entries
// are cleared and reported absent, never surfaced as errors.
package credstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Keys for the four durable session entries.
const (
	KeyAccessToken   = "access_token"
	KeyUser          = "user"
	KeyOriginalToken = "original_access_token"
	KeyOriginalUser  = "original_user"
)

const defaultStatePath = "~/.config/frotactl/state.json"

// Store is a file-backed key-value store. The zero value is not usable;
// call Open.
type Store struct {
	mu     sync.Mutex
	path   string
	values map[string]json.RawMessage
	log    *logrus.Entry
}

// DefaultPath returns the default state file location.
func DefaultPath() string {
	return defaultStatePath
}

// Open loads the state file at path (default location when empty). A
// missing or unreadable file yields an empty store; a malformed file is
// discarded so the next save starts clean.
func Open(path string, log *logrus.Logger) (*Store, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	s := &Store{
		path:   resolved,
		values: make(map[string]json.RawMessage),
		log:    log.WithField("component", "credstore"),
	}

	raw, err := os.ReadFile(resolved)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.WithError(err).Warn("state file unreadable, starting empty")
		}
		return s, nil
	}
	if err := json.Unmarshal(raw, &s.values); err != nil {
		s.log.WithError(err).Warn("state file malformed, discarding")
		s.values = make(map[string]json.RawMessage)
		_ = os.Remove(resolved)
	}
	return s, nil
}

// Get decodes the entry under key into dest. A malformed entry is
// cleared and reported absent.
func (s *Store) Get(key string, dest any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.values[key]
	if !ok || len(raw) == 0 {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		s.log.WithField("key", key).WithError(err).Warn("discarding malformed entry")
		delete(s.values, key)
		s.saveLocked()
		return false
	}
	return true
}

// GetString reads a plain string entry.
func (s *Store) GetString(key string) (string, bool) {
	var value string
	if !s.Get(key, &value) {
		return "", false
	}
	return value, true
}

// Set stores value under key and persists immediately.
func (s *Store) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = raw
	return s.saveLocked()
}

// Delete removes the given keys and persists.
func (s *Store) Delete(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.values, key)
	}
	s.saveLocked()
}

func (s *Store) saveLocked() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	raw, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultStatePath
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
