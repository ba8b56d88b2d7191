package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockKeyValueStore is a mock for repository.KeyValueStore
type MockKeyValueStore struct {
	mock.Mock
}

func (m *MockKeyValueStore) Get(visitorID int64, key string) (string, error) {
	args := m.Called(visitorID, key)
	return args.String(0), args.Error(1)
}

func (m *MockKeyValueStore) Set(visitorID int64, key, value string) error {
	args := m.Called(visitorID, key, value)
	return args.Error(0)
}

func (m *MockKeyValueStore) Delete(visitorID int64, key string) error {
	args := m.Called(visitorID, key)
	return args.Error(0)
}

// MockStorage is a mock for service.Storage
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) GetItem(key string) (string, bool, error) {
	args := m.Called(key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockStorage) SetItem(key, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}

func (m *MockStorage) RemoveItem(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

// MockProfileFetcher is a mock for repository.ProfileFetcher
type MockProfileFetcher struct {
	mock.Mock
}

func (m *MockProfileFetcher) FetchProfile(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
