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
	"github.com/hypergrow-online/OneDate/lib/schema/task"
)

// defaultListLimit matches the API default page size.
const defaultListLimit = 100

// CreateTask assigns an ID, owner, and timestamps, validates the
// record, and inserts it.
func (s *Store) CreateTask(ctx context.Context, t *task.Task, ownerID string, now time.Time) error {
	t.ID = uuid.NewString()
	t.OwnerID = ownerID
	t.CreatedAt = now.UTC()
	t.UpdatedAt = t.CreatedAt
	if err := t.Validate(); err != nil {
		return err
	}

	doc, err := codec.Marshal(t)
	if err != nil {
		return fmt.Errorf("store: encoding task: %w", err)
	}

	conn, err := s.pool.Take(ctx)
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	err = sqlitex.Execute(conn,
		"INSERT INTO tasks (id, owner_id, created_at, updated_at, doc) VALUES (?, ?, ?, ?, ?)",
		&sqlitex.ExecOptions{
			Args: []any{t.ID, t.OwnerID, t.CreatedAt.UnixNano(), t.UpdatedAt.UnixNano(), doc},
		})
	if err != nil {
		return fmt.Errorf("store: inserting task: %w", err)
	}
	return nil
}

// TaskByID returns the task with the given ID if it is owned by
// ownerID, or ErrNotFound.
func (s *Store) TaskByID(ctx context.Context, id, ownerID string) (*task.Task, error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	return taskByIDOn(conn, id, ownerID)
}

// taskByIDOn loads a task on an already-held connection. Used both by
// TaskByID and inside MutateTask's transaction.
func taskByIDOn(conn *sqlite.Conn, id, ownerID string) (*task.Task, error) {
	var found *task.Task
	err := sqlitex.Execute(conn,
		"SELECT doc FROM tasks WHERE id = ? AND owner_id = ?",
		&sqlitex.ExecOptions{
			Args: []any{id, ownerID},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				var t task.Task
				if err := codec.Unmarshal(columnBlob(stmt, 0), &t); err != nil {
					return fmt.Errorf("decoding task: %w", err)
				}
				found = &t
				return nil
			},
		})
	if err != nil {
		return nil, fmt.Errorf("store: loading task: %w", err)
	}
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

// Tasks returns ownerID's tasks in creation order, skipping the first
// skip records and returning at most limit. Non-positive limit means
// the default page size; negative skip is treated as zero.
func (s *Store) Tasks(ctx context.Context, ownerID string, skip, limit int) ([]*task.Task, error) {
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

	tasks := []*task.Task{}
	err = sqlitex.Execute(conn,
		"SELECT doc FROM tasks WHERE owner_id = ? ORDER BY created_at, id LIMIT ? OFFSET ?",
		&sqlitex.ExecOptions{
			Args: []any{ownerID, limit, skip},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				var t task.Task
				if err := codec.Unmarshal(columnBlob(stmt, 0), &t); err != nil {
					return fmt.Errorf("decoding task: %w", err)
				}
				tasks = append(tasks, &t)
				return nil
			},
		})
	if err != nil {
		return nil, fmt.Errorf("store: listing tasks: %w", err)
	}
	return tasks, nil
}

// MutateTask applies fn to the task inside a single IMMEDIATE
// transaction: read, mutate, validate, write back. This is the atomic
// read-modify-write used by the timer transitions; concurrent calls
// against the same task serialize on SQLite's write lock, so a session
// can never be counted twice. Returns the updated snapshot.
//
// An error from fn aborts the transaction and is returned unchanged,
// so handlers can map domain errors (e.g. task.ErrTimerNotRunning)
// without unwrapping.
func (s *Store) MutateTask(ctx context.Context, id, ownerID string, now time.Time, fn func(*task.Task) error) (_ *task.Task, err error) {
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

	t, err := taskByIDOn(conn, id, ownerID)
	if err != nil {
		return nil, err
	}

	if err = fn(t); err != nil {
		return nil, err
	}
	t.UpdatedAt = now.UTC()
	if err = t.Validate(); err != nil {
		return nil, err
	}

	doc, err := codec.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("store: encoding task: %w", err)
	}

	err = sqlitex.Execute(conn,
		"UPDATE tasks SET updated_at = ?, doc = ? WHERE id = ? AND owner_id = ?",
		&sqlitex.ExecOptions{
			Args: []any{t.UpdatedAt.UnixNano(), doc, id, ownerID},
		})
	if err != nil {
		return nil, fmt.Errorf("store: updating task: %w", err)
	}
	return t, nil
}

// UpdateTask applies a partial update and returns the updated
// snapshot, or ErrNotFound.
func (s *Store) UpdateTask(ctx context.Context, id, ownerID string, patch *task.Patch, now time.Time) (*task.Task, error) {
	return s.MutateTask(ctx, id, ownerID, now, func(t *task.Task) error {
		patch.Apply(t)
		return nil
	})
}

// DeleteTask removes the task, or returns ErrNotFound.
func (s *Store) DeleteTask(ctx context.Context, id, ownerID string) error {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	err = sqlitex.Execute(conn,
		"DELETE FROM tasks WHERE id = ? AND owner_id = ?",
		&sqlitex.ExecOptions{Args: []any{id, ownerID}})
	if err != nil {
		return fmt.Errorf("store: deleting task: %w", err)
	}
	if conn.Changes() == 0 {
		return ErrNotFound
	}
	return nil
}
