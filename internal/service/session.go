package service

import (
	"fmt"
	"sync"

	"phonegate/internal/domain"

	"go.uber.org/zap"
)

// Navigator is the page framework seen by the session and the route guard
type Navigator interface {
	Navigate(path string)
	CurrentPath() string
	Subscribe(fn func(path string)) (unsubscribe func())
}

// SessionStore owns a visitor's session token.
// Set is the only write path of the persisted token.
type SessionStore struct {
	storage Storage
	nav     Navigator
	logger  *zap.Logger

	mu        sync.RWMutex
	token     string
	loading   bool
	listeners []listener
	nextID    int
}

type listener struct {
	id int
	fn func()
}

// NewSessionStore creates a store in the loading state; call Restore to read the persisted token
func NewSessionStore(storage Storage, nav Navigator, logger *zap.Logger) *SessionStore {
	return &SessionStore{
		storage: storage,
		nav:     nav,
		logger:  logger,
		loading: true,
	}
}

// Restore loads the persisted token and ends the loading state.
// On a storage error the store stays loading so a later Restore can retry.
func (s *SessionStore) Restore() error {
	token, _, err := s.storage.GetItem(domain.KeyToken)
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.loading = false
	s.mu.Unlock()

	s.notify()
	return nil
}

// Token returns the current token and whether the visitor is signed in
func (s *SessionStore) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// IsLoading reports whether the initial restore has not completed yet
func (s *SessionStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Set persists a non-empty token, or removes it when token is empty.
// Memory is updated only after storage succeeded.
func (s *SessionStore) Set(token string) error {
	if token != "" {
		if err := s.storage.SetItem(domain.KeyToken, token); err != nil {
			return err
		}
	} else {
		if err := s.storage.RemoveItem(domain.KeyToken); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	s.notify()
	return nil
}

// Logout clears the session and sends the visitor to the sign-in page
func (s *SessionStore) Logout() error {
	if err := s.Set(""); err != nil {
		return err
	}

	s.logger.Info("Session cleared")

	if s.nav.CurrentPath() != domain.RouteAuth {
		s.nav.Navigate(domain.RouteAuth)
	}
	return nil
}

// Subscribe registers fn to run after every session change
func (s *SessionStore) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// notify runs listeners outside the lock; they may call back into the store
func (s *SessionStore) notify() {
	s.mu.RLock()
	listeners := make([]listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, l := range listeners {
		l.fn()
	}
}
