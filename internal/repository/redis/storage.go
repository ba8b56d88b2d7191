package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"phonegate/internal/repository"

	goredis "github.com/redis/go-redis/v9"
)

// StorageRepo implements repository.KeyValueStore on Redis strings
type StorageRepo struct {
	rdb     *goredis.Client
	timeout time.Duration
}

// NewStorageRepo connects to Redis and verifies the connection with a ping
func NewStorageRepo(ctx context.Context, opts *goredis.Options) (*StorageRepo, error) {
	rdb := goredis.NewClient(opts)

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &StorageRepo{rdb: rdb, timeout: 5 * time.Second}, nil
}

// Close releases the client
func (r *StorageRepo) Close() error {
	return r.rdb.Close()
}

func storageKey(visitorID int64, key string) string {
	return fmt.Sprintf("visitor:%d:%s", visitorID, key)
}

// Get returns the value stored under key for the visitor
func (r *StorageRepo) Get(visitorID int64, key string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	value, err := r.rdb.Get(ctx, storageKey(visitorID, key)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set stores value under key without expiry
func (r *StorageRepo) Set(visitorID int64, key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	return r.rdb.Set(ctx, storageKey(visitorID, key), value, 0).Err()
}

// Delete removes key
func (r *StorageRepo) Delete(visitorID int64, key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	return r.rdb.Del(ctx, storageKey(visitorID, key)).Err()
}
