// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/hypergrow-online/OneDate/lib/codec"
	"github.com/hypergrow-online/OneDate/lib/schema/note"
)

// CreateNote assigns an ID, owner, and timestamps, validates the
// record, and inserts it.
func (s *Store) CreateNote(ctx context.Context, n *note.Note, ownerID string, now time.Time) error {
	n.ID = uuid.NewString()
	n.OwnerID = ownerID
	n.CreatedAt = now.UTC()
	n.UpdatedAt = n.CreatedAt
	if err := n.Validate(); err != nil {
		return err
	}

	doc, err := codec.Marshal(n)
	if err != nil {
		return fmt.Errorf("store: encoding note: %w", err)
	}

	conn, err := s.pool.Take(ctx)
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	err = sqlitex.Execute(conn,
		`INSERT INTO notes (id, owner_id, created_at, updated_at, title_lower, content_lower, doc)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		&sqlitex.ExecOptions{
			Args: []any{
				n.ID, n.OwnerID,
				n.CreatedAt.UnixNano(), n.UpdatedAt.UnixNano(),
				strings.ToLower(n.Title), strings.ToLower(n.Content),
				doc,
			},
		})
	if err != nil {
		return fmt.Errorf("store: inserting note: %w", err)
	}
	return nil
}

// NoteByID returns the note with the given ID if it is owned by
// ownerID, or ErrNotFound.
func (s *Store) NoteByID(ctx context.Context, id, ownerID string) (*note.Note, error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	return noteByIDOn(conn, id, ownerID)
}

func noteByIDOn(conn *sqlite.Conn, id, ownerID string) (*note.Note, error) {
	var found *note.Note
	err := sqlitex.Execute(conn,
		"SELECT doc FROM notes WHERE id = ? AND owner_id = ?",
		&sqlitex.ExecOptions{
			Args: []any{id, ownerID},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				var n note.Note
				if err := codec.Unmarshal(columnBlob(stmt, 0), &n); err != nil {
					return fmt.Errorf("decoding note: %w", err)
				}
				found = &n
				return nil
			},
		})
	if err != nil {
		return nil, fmt.Errorf("store: loading note: %w", err)
	}
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

// Notes returns ownerID's notes in creation order with skip/limit
// pagination. Non-positive limit means the default page size.
func (s *Store) Notes(ctx context.Context, ownerID string, skip, limit int) ([]*note.Note, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	conn, err := s.pool.Take(ctx)
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	return collectNotes(conn,
		"SELECT doc FROM notes WHERE owner_id = ? ORDER BY created_at, id LIMIT ? OFFSET ?",
		[]any{ownerID, limit, skip})
}

// SearchNotes returns ownerID's notes whose title or content contains
// query, case-insensitively. The query is matched as a literal
// substring; LIKE metacharacters are escaped.
func (s *Store) SearchNotes(ctx context.Context, ownerID, query string) ([]*note.Note, error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
	return collectNotes(conn,
		`SELECT doc FROM notes WHERE owner_id = ?
		 AND (title_lower LIKE ? ESCAPE '\' OR content_lower LIKE ? ESCAPE '\')
		 ORDER BY created_at, id`,
		[]any{ownerID, pattern, pattern})
}

func collectNotes(conn *sqlite.Conn, query string, args []any) ([]*note.Note, error) {
	notes := []*note.Note{}
	err := sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			var n note.Note
			if err := codec.Unmarshal(columnBlob(stmt, 0), &n); err != nil {
				return fmt.Errorf("decoding note: %w", err)
			}
			notes = append(notes, &n)
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("store: listing notes: %w", err)
	}
	return notes, nil
}

// MutateNote applies fn to the note inside a single IMMEDIATE
// transaction: read, mutate, validate, write back. The lower-cased
// search columns are refreshed alongside the document. An error from
// fn aborts the transaction and is returned unchanged.
func (s *Store) MutateNote(ctx context.Context, id, ownerID string, now time.Time, fn func(*note.Note) error) (_ *note.Note, err error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	endTransaction, err := sqlitex.ImmediateTransaction(conn)
	if err != nil {
		return nil, fmt.Errorf("store: begin transaction: %w", err)
	}
	defer endTransaction(&err)

	n, err := noteByIDOn(conn, id, ownerID)
	if err != nil {
		return nil, err
	}

	if err = fn(n); err != nil {
		return nil, err
	}
	n.UpdatedAt = now.UTC()
	if err = n.Validate(); err != nil {
		return nil, err
	}

	doc, err := codec.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("store: encoding note: %w", err)
	}

	err = sqlitex.Execute(conn,
		`UPDATE notes SET updated_at = ?, title_lower = ?, content_lower = ?, doc = ?
		 WHERE id = ? AND owner_id = ?`,
		&sqlitex.ExecOptions{
			Args: []any{
				n.UpdatedAt.UnixNano(),
				strings.ToLower(n.Title), strings.ToLower(n.Content),
				doc, id, ownerID,
			},
		})
	if err != nil {
		return nil, fmt.Errorf("store: updating note: %w", err)
	}
	return n, nil
}

// UpdateNote applies a partial update and returns the updated
// snapshot, or ErrNotFound.
func (s *Store) UpdateNote(ctx context.Context, id, ownerID string, patch *note.Patch, now time.Time) (*note.Note, error) {
	return s.MutateNote(ctx, id, ownerID, now, func(n *note.Note) error {
		patch.Apply(n)
		return nil
	})
}

// DeleteNote removes the note, or returns ErrNotFound.
func (s *Store) DeleteNote(ctx context.Context, id, ownerID string) error {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	err = sqlitex.Execute(conn,
		"DELETE FROM notes WHERE id = ? AND owner_id = ?",
		&sqlitex.ExecOptions{Args: []any{id, ownerID}})
	if err != nil {
		return fmt.Errorf("store: deleting note: %w", err)
	}
	if conn.Changes() == 0 {
		return ErrNotFound
	}
	return nil
}
