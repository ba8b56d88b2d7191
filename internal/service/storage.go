package service

import (
	"errors"
	"fmt"

	"phonegate/internal/repository"
)

// Storage is a visitor's key-value store, modeled on browser local storage
type Storage interface {
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}

// LocalStorage scopes a repository.KeyValueStore to one visitor
type LocalStorage struct {
	repo      repository.KeyValueStore
	visitorID int64
}

// NewLocalStorage creates the storage view for visitorID
func NewLocalStorage(repo repository.KeyValueStore, visitorID int64) *LocalStorage {
	return &LocalStorage{
		repo:      repo,
		visitorID: visitorID,
	}
}

// GetItem returns the value under key and whether it exists
func (s *LocalStorage) GetItem(key string) (string, bool, error) {
	value, err := s.repo.Get(s.visitorID, key)
	if errors.Is(err, repository.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, true, nil
}

// SetItem stores value under key
func (s *LocalStorage) SetItem(key, value string) error {
	if err := s.repo.Set(s.visitorID, key, value); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

// RemoveItem deletes key
func (s *LocalStorage) RemoveItem(key string) error {
	if err := s.repo.Delete(s.visitorID, key); err != nil {
		return fmt.Errorf("failed to remove %q: %w", key, err)
	}
	return nil
}
