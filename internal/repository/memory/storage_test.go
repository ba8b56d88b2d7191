package memory

import (
	"testing"

	"phonegate/internal/repository"

	"github.com/stretchr/testify/assert"
)

func TestStorageRepo(t *testing.T) {
	repo := NewStorageRepo()

	_, err := repo.Get(1, "token")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.NoError(t, repo.Set(1, "token", "t1"))
	assert.NoError(t, repo.Set(2, "token", "t2"))

	value, err := repo.Get(1, "token")
	assert.NoError(t, err)
	assert.Equal(t, "t1", value)

	value, err = repo.Get(2, "token")
	assert.NoError(t, err)
	assert.Equal(t, "t2", value)

	assert.NoError(t, repo.Delete(1, "token"))
	_, err = repo.Get(1, "token")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.NoError(t, repo.Delete(1, "token"))
}
