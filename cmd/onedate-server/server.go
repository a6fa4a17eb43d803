// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hypergrow-online/OneDate/lib/authtoken"
	"github.com/hypergrow-online/OneDate/lib/clock"
	"github.com/hypergrow-online/OneDate/lib/mediastore"
	"github.com/hypergrow-online/OneDate/lib/service"
	"github.com/hypergrow-online/OneDate/lib/store"
	"github.com/hypergrow-online/OneDate/lib/version"
)

// server holds the dependencies shared by all request handlers.
// Everything is injected; there is no package-level state.
type server struct {
	store    *store.Store
	media    *mediastore.Store
	uploader mediastore.Uploader
	clock    clock.Clock
	logger   *slog.Logger

	tokenSecret []byte
	tokenTTL    time.Duration
	bcryptCost  int

	// baseURL is the externally visible URL of this server, used to
	// build /media/{id} URLs for locally stored uploads.
	baseURL string
}

// authHandler is a request handler that runs after bearer token
// verification. userID is the token subject.
type authHandler func(w http.ResponseWriter, r *http.Request, userID string)

// routes builds the request router.
func (s *server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleBanner)
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /api/v1/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/v1/auth/login", s.handleLogin)
	mux.Handle("GET /api/v1/auth/me", s.requireUser(s.handleMe))

	mux.Handle("POST /api/v1/tasks", s.requireUser(s.handleCreateTask))
	mux.Handle("GET /api/v1/tasks", s.requireUser(s.handleListTasks))
	mux.Handle("GET /api/v1/tasks/{id}", s.requireUser(s.handleGetTask))
	mux.Handle("PUT /api/v1/tasks/{id}", s.requireUser(s.handleUpdateTask))
	mux.Handle("DELETE /api/v1/tasks/{id}", s.requireUser(s.handleDeleteTask))
	mux.Handle("POST /api/v1/tasks/{id}/start", s.requireUser(s.handleStartTimer))
	mux.Handle("POST /api/v1/tasks/{id}/pause", s.requireUser(s.handlePauseTimer))
	mux.Handle("POST /api/v1/tasks/{id}/complete", s.requireUser(s.handleCompleteTask))

	mux.Handle("POST /api/v1/notes", s.requireUser(s.handleCreateNote))
	mux.Handle("GET /api/v1/notes", s.requireUser(s.handleListNotes))
	mux.Handle("GET /api/v1/notes/search", s.requireUser(s.handleSearchNotes))
	mux.Handle("GET /api/v1/notes/{id}", s.requireUser(s.handleGetNote))
	mux.Handle("PUT /api/v1/notes/{id}", s.requireUser(s.handleUpdateNote))
	mux.Handle("DELETE /api/v1/notes/{id}", s.requireUser(s.handleDeleteNote))
	mux.Handle("GET /api/v1/notes/{id}/html", s.requireUser(s.handleNoteHTML))
	mux.Handle("POST /api/v1/notes/upload-video", s.requireUser(s.handleUploadVideo))

	mux.HandleFunc("GET /media/{id}", s.handleMedia)

	return mux
}

// requireUser verifies the bearer token and passes the subject user ID
// to the wrapped handler. Invalid, expired, or missing tokens get a
// 401 with a single generic detail.
func (s *server) requireUser(next authHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			service.WriteError(w, s.logger, service.Unauthorized("could not validate credentials"))
			return
		}

		userID, err := authtoken.VerifyAt(s.tokenSecret, token, s.clock.Now())
		if err != nil {
			service.WriteError(w, s.logger, service.Unauthorized("could not validate credentials"))
			return
		}
		next(w, r, userID)
	})
}

func (s *server) handleBanner(w http.ResponseWriter, r *http.Request) {
	service.WriteJSON(w, http.StatusOK, map[string]string{
		"service": "onedate",
		"version": version.Short(),
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	service.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
