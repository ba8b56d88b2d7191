package service

import (
	"errors"
	"testing"

	"phonegate/internal/repository"
	"phonegate/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestLocalStorage_GetItem(t *testing.T) {
	tests := []struct {
		name          string
		mockValue     string
		mockError     error
		expectedValue string
		expectedFound bool
		expectedError bool
	}{
		{name: "present", mockValue: "t1", expectedValue: "t1", expectedFound: true},
		{name: "missing", mockError: repository.ErrNotFound},
		{name: "backend error", mockError: errors.New("timeout"), expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(testutil.MockKeyValueStore)
			repo.On("Get", int64(42), "token").Return(tt.mockValue, tt.mockError)

			storage := NewLocalStorage(repo, 42)

			value, found, err := storage.GetItem("token")

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedValue, value)
			assert.Equal(t, tt.expectedFound, found)
			repo.AssertExpectations(t)
		})
	}
}

func TestLocalStorage_SetAndRemove(t *testing.T) {
	repo := new(testutil.MockKeyValueStore)
	repo.On("Set", int64(42), "token", "t1").Return(nil)
	repo.On("Delete", int64(42), "token").Return(nil)
	repo.On("Set", int64(42), "user", "{}").Return(errors.New("disk full"))

	storage := NewLocalStorage(repo, 42)

	assert.NoError(t, storage.SetItem("token", "t1"))
	assert.NoError(t, storage.RemoveItem("token"))
	assert.Error(t, storage.SetItem("user", "{}"))
	repo.AssertExpectations(t)
}
