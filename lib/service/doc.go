// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

// Package service provides the HTTP serving layer shared by OneDate
// binaries: listener lifecycle with graceful shutdown, and the JSON
// request/response conventions of the API.
//
// [HTTPServer] owns the TCP listener; the caller provides the
// http.Handler. Serve(ctx) blocks until the context is cancelled and
// in-flight requests drain.
//
// API errors are [*Error] values carrying an HTTP status and a
// client-facing detail string. [WriteError] renders them as the
// {"detail": ...} envelope; any other error becomes an opaque 500 so
// internals never leak to clients.
package service
