package memory

import (
	"sync"

	"phonegate/internal/repository"
)

type storageKey struct {
	visitorID int64
	key       string
}

// StorageRepo is an in-process repository.KeyValueStore; contents are lost on restart
type StorageRepo struct {
	mu     sync.RWMutex
	values map[storageKey]string
}

// NewStorageRepo creates an empty in-memory storage
func NewStorageRepo() *StorageRepo {
	return &StorageRepo{values: make(map[storageKey]string)}
}

// Get returns the value stored under key for the visitor
func (r *StorageRepo) Get(visitorID int64, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.values[storageKey{visitorID, key}]
	if !ok {
		return "", repository.ErrNotFound
	}
	return value, nil
}

// Set stores value under key
func (r *StorageRepo) Set(visitorID int64, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[storageKey{visitorID, key}] = value
	return nil
}

// Delete removes key
func (r *StorageRepo) Delete(visitorID int64, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, storageKey{visitorID, key})
	return nil
}
