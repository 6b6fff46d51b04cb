package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	// import sqlite driver.
	_ "github.com/mattn/go-sqlite3"

	"pocketledger/internal/logger"
	"pocketledger/internal/storage"
)

type sqliteStore struct {
	db     *sql.DB
	logger *logger.Logger
}

// New opens (or creates) the document database at source and applies the
// schema. source may be ":memory:" for a throwaway store.
func New(source string, log *logger.Logger) (storage.Store, error) {
	db, err := sql.Open("sqlite3", source)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx := context.Background()

	_, err = db.ExecContext(ctx, "PRAGMA journal_mode = WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to set journal_mode: %w", err)
	}

	_, err = db.ExecContext(ctx, "PRAGMA busy_timeout = 5000")
	if err != nil {
		return nil, fmt.Errorf("failed to set busy_timeout: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS documents (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to create documents table: %w", err)
	}

	return &sqliteStore{db: db, logger: log}, nil
}

func (s *sqliteStore) Load(ctx context.Context, key string, v any) error {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM documents WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil
		}
		return fmt.Errorf("failed to read document %q: %w", key, err)
	}

	if err := storage.Decode([]byte(value), v); err != nil {
		// Corrupt payloads degrade to "no data", and v stays untouched.
		s.logger.Warn("discarding corrupt document", "key", key, "error", err.Error())
		return nil
	}

	return nil
}

func (s *sqliteStore) Save(ctx context.Context, key string, v any) error {
	value, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize document %q: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents(key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(value))
	if err != nil {
		return fmt.Errorf("failed to write document %q: %w", key, err)
	}

	return nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
