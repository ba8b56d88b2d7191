package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no value
var ErrNotFound = errors.New("key not found")

// KeyValueStore persists string values per visitor namespace
type KeyValueStore interface {
	Get(visitorID int64, key string) (string, error)
	Set(visitorID int64, key, value string) error
	Delete(visitorID int64, key string) error
}

// ProfileFetcher fetches a mock user profile from the remote API
type ProfileFetcher interface {
	FetchProfile(ctx context.Context) ([]byte, error)
}
