// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

// Package note defines the note document schema.
//
// A note is freeform content owned by one user, organized into
// folders and tags. Video notes additionally reference an uploaded
// recording by URL. Notes carry no derived state; the schema is a
// plain record plus a pointer-field Patch for partial updates.
package note
