package store

import (
	"database/sql"
	"errors"
)

// kv is a minimal key-value accessor over the kv table. Values are
// JSON documents keyed by the storage keys documented in the repos.
type kv struct {
	db *sql.DB
}

// get returns the value for key, with ok=false when the key is absent.
func (k kv) get(key string) (string, bool, error) {
	var value string
	err := k.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// set inserts or replaces the value for key.
func (k kv) set(key, value string) error {
	_, err := k.db.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	return err
}

// del removes key if present.
func (k kv) del(key string) error {
	_, err := k.db.Exec("DELETE FROM kv WHERE key = ?", key)
	return err
}
