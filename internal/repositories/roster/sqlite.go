package roster

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/pkg/clock"
)

const kvSchema = `CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

// SQLiteStoreConfig contains configuration for the durable SQLite store
type SQLiteStoreConfig struct {
	Path  string
	Clock clock.Clock
}

// Validate validates the SQLiteStoreConfig
func (cfg *SQLiteStoreConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if strings.TrimSpace(cfg.Path) == "" {
		return errors.InvalidArgument("sqlite path is required")
	}
	return nil
}

// SQLiteStore is the durable tier: a single kv table in a WAL-mode database file
type SQLiteStore struct {
	db    *sql.DB
	clock clock.Clock
}

// OpenSQLiteStore opens the database at cfg.Path and ensures the schema exists
func OpenSQLiteStore(ctx context.Context, cfg *SQLiteStoreConfig) (*SQLiteStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	dsn := filepath.Clean(cfg.Path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open sqlite database")
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping sqlite database")
	}
	if _, err := db.ExecContext(ctx, kvSchema); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to create kv table")
	}

	return &SQLiteStore{db: db, clock: c}, nil
}

// Get returns the value stored under key
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", errors.NotFoundf("key %s not found", key)
		}
		return "", errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read from sqlite")
	}
	return value, nil
}

// Set upserts value under key
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, s.clock.Now().UnixMilli(),
	)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write to sqlite")
	}
	return nil
}

// Delete removes key
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete from sqlite")
	}
	return nil
}

// Close releases the database handle
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
