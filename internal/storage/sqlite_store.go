package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	_ "modernc.org/sqlite"

	jerrors "github.com/julianstephens/journl/internal/errors"
	"github.com/julianstephens/journl/internal/migration"
	"github.com/julianstephens/journl/migrations"
)

// SQLiteStore keeps every collection as a row of the collections table.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	if _, err := migration.NewRunner(s.db, migrations.SQLite()).Apply(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("failed to open %s: %w", s.path, jerrors.ErrNotInitialized)
	}

	if err := s.open(); err != nil {
		return err
	}

	runner := migration.NewRunner(s.db, migrations.SQLite())
	if err := runner.Validate(); err != nil {
		return err
	}
	// Pick up migrations added since the database was created.
	if _, err := runner.Apply(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection serialises writers from this process.
	db.SetMaxOpenConns(1)
	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) GetConfigPath() string { return s.path }

// GetDB exposes the connection for backups and tests.
func (s *SQLiteStore) GetDB() *sql.DB { return s.db }

func (s *SQLiteStore) GetCollection(key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM collections WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read collection %s: %w", key, err)
	}
	return []byte(value), true, nil
}

func (s *SQLiteStore) PutCollection(key string, data []byte) error {
	return s.PutCollections(map[string][]byte{key: data})
}

func (s *SQLiteStore) PutCollections(values map[string][]byte) error {
	if len(values) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		_, err := tx.Exec(`
			INSERT INTO collections (key, value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			key, string(values[key]), now)
		if err != nil {
			return fmt.Errorf("failed to write collection %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit collections: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Keys() ([]string, error) {
	rows, err := s.db.Query("SELECT key FROM collections ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
