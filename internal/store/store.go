package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite database holding all persisted state: the
// known-item set, preferences, and the in-flight session snapshot.
// Writes are last-writer-wins; two concurrent processes won't corrupt
// the database but the later write silently replaces the earlier one.
type Store struct {
	db *sql.DB
}

// Open creates a Store backed by the SQLite database at dsn. It
// applies recommended pragmas and creates the schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// KnownRepo returns the known-item repository backed by this store.
func (s *Store) KnownRepo() *KnownRepo {
	return &KnownRepo{kv: kv{db: s.db}}
}

// PrefsRepo returns the preferences repository backed by this store.
func (s *Store) PrefsRepo() *PrefsRepo {
	return &PrefsRepo{kv: kv{db: s.db}}
}

// SessionRepo returns the session-snapshot repository backed by this store.
func (s *Store) SessionRepo() *SessionRepo {
	return &SessionRepo{kv: kv{db: s.db}}
}

// Wipe deletes every persisted key: known items, preferences, and the
// session snapshot. The reset command calls this after confirmation.
func (s *Store) Wipe() error {
	if _, err := s.db.Exec("DELETE FROM kv"); err != nil {
		return fmt.Errorf("wipe store: %w", err)
	}
	return nil
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. VIMDRILL_DB environment variable
// 2. $XDG_DATA_HOME/vimdrill/vimdrill.db
// 3. ~/.local/share/vimdrill/vimdrill.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("VIMDRILL_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "vimdrill", "vimdrill.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
