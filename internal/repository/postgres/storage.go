package postgres

import (
	"database/sql"

	"phonegate/internal/repository"
)

// StorageRepo implements repository.KeyValueStore on the local_storage table
type StorageRepo struct {
	db *sql.DB
}

// NewStorageRepo creates a new storage repository
func NewStorageRepo(db *sql.DB) *StorageRepo {
	return &StorageRepo{db: db}
}

// Get returns the value stored under key for the visitor
func (r *StorageRepo) Get(visitorID int64, key string) (string, error) {
	var value string
	query := `SELECT value FROM local_storage WHERE visitor_id = $1 AND key = $2`
	err := r.db.QueryRow(query, visitorID, key).Scan(&value)

	if err == sql.ErrNoRows {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", err
	}

	return value, nil
}

// Set stores value under key, replacing any previous value
func (r *StorageRepo) Set(visitorID int64, key, value string) error {
	query := `
		INSERT INTO local_storage (visitor_id, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (visitor_id, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	_, err := r.db.Exec(query, visitorID, key, value)
	return err
}

// Delete removes key; deleting a missing key is not an error
func (r *StorageRepo) Delete(visitorID int64, key string) error {
	query := `DELETE FROM local_storage WHERE visitor_id = $1 AND key = $2`
	_, err := r.db.Exec(query, visitorID, key)
	return err
}
