// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

// Package sqlitepool provides the OneDate-standard SQLite connection
// pool.
//
// The document store (lib/store) is the only shared mutable resource
// in the system, and this package is its foundation. It wraps
// zombiezen.com/go/sqlite with production defaults: WAL journal mode,
// NORMAL synchronous for process-crash durability without
// fsync-per-commit overhead, and a busy timeout so concurrent writers
// queue instead of failing with SQLITE_BUSY.
//
// The pool is built on zombiezen's sqlitex.Pool, which manages a
// fixed-size set of connections. Callers [Pool.Take] a connection,
// perform work, and [Pool.Put] it back. Connections are NOT safe for
// concurrent use; each request handler holds its own connection for
// the duration of its store call.
//
// # Pragmas
//
// Every connection in the pool is initialized with these pragmas:
//
//   - journal_mode=WAL: concurrent readers and a single writer. List
//     and search requests never block timer mutations.
//   - synchronous=NORMAL: transactions survive process crashes.
//   - busy_timeout=5000: wait up to 5 seconds for a write lock.
//   - foreign_keys=OFF: ownership scoping is enforced in SQL
//     predicates, not FK cascades.
//   - temp_store=MEMORY: temporary structures in memory.
//
// # Design
//
// This package is thin: it applies standard pragmas and
// exposes the underlying zombiezen types directly. The store writes
// SQL, uses sqlitex.Execute for cached statements, and wraps each
// document read-modify-write in sqlitex.ImmediateTransaction. There is
// no query builder and no ORM.
package sqlitepool
