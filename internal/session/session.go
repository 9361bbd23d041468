// Package session holds the signed-in user and persists it across runs.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"gtodo/internal/service"
)

const (
	// UserKey is the storage key of the persisted session.
	UserKey = "user"

	// Version of the persisted layout.
	Version = 0
)

// record is the persisted layout: {"state":{"user":...},"version":0}.
type record struct {
	State struct {
		User *service.User `json:"user"`
	} `json:"state"`
	Version int `json:"version"`
}

// Session is the client-side session: at most one signed-in user.
// It is safe for concurrent use.
type Session struct {
	mu      sync.RWMutex
	user    *service.User
	storage Storage
	logger  *zap.Logger
}

// Open rehydrates a session from storage. A missing record means signed out.
// An unreadable record is logged and also treated as signed out; it is
// never checked against the store.
func Open(storage Storage, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{storage: storage, logger: logger.Named("session")}

	data, err := storage.GetItem(UserKey)
	if errors.Is(err, ErrNoItem) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		s.logger.Warn("discarding unreadable session", zap.Error(err))
		return s, nil
	}
	if rec.Version != Version {
		s.logger.Warn("discarding session with unknown version", zap.Int("version", rec.Version))
		return s, nil
	}
	if rec.State.User != nil && rec.State.User.ID != "" {
		u := *rec.State.User
		u.Password = ""
		s.user = &u
		s.logger.Debug("session rehydrated", zap.String("user_id", u.ID))
	}
	return s, nil
}

// User returns the signed-in user.
func (s *Session) User() (service.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return service.User{}, false
	}
	return *s.user, true
}

// SetUser replaces the signed-in user and persists it.
// The password is never persisted.
func (s *Session) SetUser(u service.User) error {
	u.Password = ""

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.write(&u); err != nil {
		return err
	}
	s.user = &u
	return nil
}

// RemoveUser signs out and persists the empty session.
func (s *Session) RemoveUser() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.write(nil); err != nil {
		return err
	}
	s.user = nil
	return nil
}

func (s *Session) write(u *service.User) error {
	var rec record
	rec.State.User = u
	rec.Version = Version

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.storage.SetItem(UserKey, data); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
