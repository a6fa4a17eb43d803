// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

// onedate-server is the OneDate HTTP API: task and note CRUD, the
// task timer, user registration and login, note search, and video
// note uploads.
//
// Configuration comes from a YAML file named by --config or the
// ONEDATE_CONFIG environment variable. The server persists documents
// in a local SQLite database and media blobs in a local directory;
// video uploads are pushed to the configured remote storage endpoint
// when one is set, falling back to local serving under /media/{id}.
//
// All API endpoints except registration, login, the banner, health,
// and media downloads require a bearer access token obtained from
// /api/v1/auth/login.
package main
