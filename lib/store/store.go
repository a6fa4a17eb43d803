// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/hypergrow-online/OneDate/lib/sqlitepool"
)

// Errors returned by store operations.
var (
	// ErrNotFound covers both a missing document and a document owned
	// by another user, so probing for foreign IDs leaks nothing.
	ErrNotFound = errors.New("store: not found")

	// ErrDuplicateEmail is returned by CreateUser when the email is
	// already registered.
	ErrDuplicateEmail = errors.New("store: email already registered")
)

// schema creates the three collections. The doc column holds the CBOR
// payload; the remaining columns are extracted for filtering and kept
// in sync on every write.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id         TEXT PRIMARY KEY,
	email      TEXT NOT NULL UNIQUE,
	created_at INTEGER NOT NULL,
	doc        BLOB NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
	id         TEXT PRIMARY KEY,
	owner_id   TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL,
	doc        BLOB NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_owner ON tasks(owner_id, created_at);

CREATE TABLE IF NOT EXISTS notes (
	id            TEXT PRIMARY KEY,
	owner_id      TEXT NOT NULL,
	created_at    INTEGER NOT NULL,
	updated_at    INTEGER NOT NULL,
	title_lower   TEXT NOT NULL,
	content_lower TEXT NOT NULL,
	doc           BLOB NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_notes_owner ON notes(owner_id, created_at);
`

// Config holds the parameters for opening a store.
type Config struct {
	// Path is the SQLite database file. Use ":memory:" with
	// PoolSize 1 for tests.
	Path string

	// PoolSize is the connection pool size. Zero means the pool
	// default.
	PoolSize int

	// Logger receives operational messages. If nil, a no-op logger
	// is used.
	Logger *slog.Logger
}

// Store is the document store. Safe for concurrent use.
type Store struct {
	pool   *sqlitepool.Pool
	logger *slog.Logger
}

// Open opens the database, applying the schema on each new
// connection. The caller must Close the store on shutdown.
func Open(cfg Config) (*Store, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	pool, err := sqlitepool.Open(sqlitepool.Config{
		Path:     cfg.Path,
		PoolSize: cfg.PoolSize,
		Logger:   logger,
		OnConnect: func(conn *sqlite.Conn) error {
			return sqlitex.ExecuteScript(conn, schema, nil)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}

	return &Store{pool: pool, logger: logger}, nil
}

// Close releases the connection pool. Blocks until all borrowed
// connections are returned.
func (s *Store) Close() error {
	return s.pool.Close()
}

// escapeLike escapes LIKE metacharacters in a user-supplied search
// term so the term matches literally. Used with ESCAPE '\'.
func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}

// columnBlob copies the blob in column col out of the current row.
func columnBlob(stmt *sqlite.Stmt, col int) []byte {
	buf := make([]byte, stmt.ColumnLen(col))
	stmt.ColumnBytes(col, buf)
	return buf
}
