// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/hypergrow-online/OneDate/lib/codec"
	"github.com/hypergrow-online/OneDate/lib/schema/user"
)

// CreateUser assigns an ID and creation time, validates the record,
// and inserts it. Fails with ErrDuplicateEmail if the email is
// already registered. The uniqueness check and the insert run in one
// IMMEDIATE transaction, so concurrent registrations of the same
// email cannot both succeed.
func (s *Store) CreateUser(ctx context.Context, u *user.User, now time.Time) (err error) {
	u.ID = uuid.NewString()
	u.CreatedAt = now.UTC()
	if err := u.Validate(); err != nil {
		return err
	}

	doc, err := codec.Marshal(u)
	if err != nil {
		return fmt.Errorf("store: encoding user: %w", err)
	}

	conn, err := s.pool.Take(ctx)
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	endTransaction, err := sqlitex.ImmediateTransaction(conn)
	if err != nil {
		return fmt.Errorf("store: begin transaction: %w", err)
	}
	defer endTransaction(&err)

	exists := false
	err = sqlitex.Execute(conn, "SELECT 1 FROM users WHERE email = ?", &sqlitex.ExecOptions{
		Args: []any{u.Email},
		ResultFunc: func(*sqlite.Stmt) error {
			exists = true
			return nil
		},
	})
	if err != nil {
		return fmt.Errorf("store: checking email: %w", err)
	}
	if exists {
		return ErrDuplicateEmail
	}

	err = sqlitex.Execute(conn,
		"INSERT INTO users (id, email, created_at, doc) VALUES (?, ?, ?, ?)",
		&sqlitex.ExecOptions{
			Args: []any{u.ID, u.Email, u.CreatedAt.UnixNano(), doc},
		})
	if err != nil {
		return fmt.Errorf("store: inserting user: %w", err)
	}
	return nil
}

// UserByEmail returns the user registered under email, or ErrNotFound.
func (s *Store) UserByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.userWhere(ctx, "email = ?", email)
}

// UserByID returns the user with the given ID, or ErrNotFound.
func (s *Store) UserByID(ctx context.Context, id string) (*user.User, error) {
	return s.userWhere(ctx, "id = ?", id)
}

func (s *Store) userWhere(ctx context.Context, predicate string, arg string) (*user.User, error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	var found *user.User
	err = sqlitex.Execute(conn, "SELECT doc FROM users WHERE "+predicate, &sqlitex.ExecOptions{
		Args: []any{arg},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			var u user.User
			if err := codec.Unmarshal(columnBlob(stmt, 0), &u); err != nil {
				return fmt.Errorf("decoding user: %w", err)
			}
			found = &u
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("store: loading user: %w", err)
	}
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}
