// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

// Package store is the SQLite-backed document store for users, tasks,
// and notes.
//
// Each record is persisted as a deterministic CBOR blob (lib/codec)
// alongside a few extracted columns used for filtering: identity,
// owner, timestamps, and (for notes) lower-cased title and content to
// serve case-insensitive search. The blob is the source of truth;
// extracted columns are derived on every write.
//
// Every task and note operation is scoped by owner ID. A document that
// exists but belongs to another user is reported as [ErrNotFound];
// callers cannot distinguish "absent" from "not yours".
//
// Timer transitions go through [Store.MutateTask]: a single IMMEDIATE
// transaction that reads the document, applies a caller-supplied
// mutation, and writes it back. SQLite's write serialization makes the
// read-modify-write atomic with respect to concurrent mutations of the
// same task, so two racing pause calls cannot double-count a session.
// No cross-document transactions exist anywhere.
//
// The store is constructed explicitly with [Open] and released with
// [Store.Close]; there is no package-level handle.
package store
