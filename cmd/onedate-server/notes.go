// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"errors"
	"net/http"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/hypergrow-online/OneDate/lib/schema/note"
	"github.com/hypergrow-online/OneDate/lib/service"
	"github.com/hypergrow-online/OneDate/lib/store"
)

// createNoteRequest is the POST /api/v1/notes body. Video notes are
// created through the upload endpoint, not here.
type createNoteRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Folder  string   `json:"folder"`
	Tags    []string `json:"tags"`
}

func (s *server) handleCreateNote(w http.ResponseWriter, r *http.Request, userID string) {
	var request createNoteRequest
	if err := service.DecodeJSON(r, &request); err != nil {
		service.WriteError(w, s.logger, err)
		return
	}

	n := note.New(request.Title, request.Content)
	if request.Folder != "" {
		n.Folder = request.Folder
	}
	n.Tags = request.Tags

	if err := n.Validate(); err != nil {
		service.WriteError(w, s.logger, service.Validation(err.Error()))
		return
	}
	if err := s.store.CreateNote(r.Context(), n, userID, s.clock.Now()); err != nil {
		service.WriteError(w, s.logger, err)
		return
	}
	service.WriteJSON(w, http.StatusCreated, n)
}

func (s *server) handleListNotes(w http.ResponseWriter, r *http.Request, userID string) {
	skip, limit, err := parsePagination(r)
	if err != nil {
		service.WriteError(w, s.logger, err)
		return
	}
	notes, err := s.store.Notes(r.Context(), userID, skip, limit)
	if err != nil {
		service.WriteError(w, s.logger, err)
		return
	}
	service.WriteJSON(w, http.StatusOK, notes)
}

func (s *server) handleSearchNotes(w http.ResponseWriter, r *http.Request, userID string) {
	query := r.URL.Query().Get("q")
	if query == "" {
		service.WriteError(w, s.logger, service.Validation("search query is required"))
		return
	}
	notes, err := s.store.SearchNotes(r.Context(), userID, query)
	if err != nil {
		service.WriteError(w, s.logger, err)
		return
	}
	service.WriteJSON(w, http.StatusOK, notes)
}

func (s *server) handleGetNote(w http.ResponseWriter, r *http.Request, userID string) {
	n, err := s.store.NoteByID(r.Context(), r.PathValue("id"), userID)
	if errors.Is(err, store.ErrNotFound) {
		service.WriteError(w, s.logger, service.NotFound("note not found"))
		return
	}
	if err != nil {
		service.WriteError(w, s.logger, err)
		return
	}
	service.WriteJSON(w, http.StatusOK, n)
}

func (s *server) handleUpdateNote(w http.ResponseWriter, r *http.Request, userID string) {
	var patch note.Patch
	if err := service.DecodeJSON(r, &patch); err != nil {
		service.WriteError(w, s.logger, err)
		return
	}

	updated, err := s.store.MutateNote(r.Context(), r.PathValue("id"), userID, s.clock.Now(),
		func(n *note.Note) error {
			patch.Apply(n)
			if err := n.Validate(); err != nil {
				return service.Validation(err.Error())
			}
			return nil
		})
	if errors.Is(err, store.ErrNotFound) {
		service.WriteError(w, s.logger, service.NotFound("note not found"))
		return
	}
	if err != nil {
		service.WriteError(w, s.logger, err)
		return
	}
	service.WriteJSON(w, http.StatusOK, updated)
}

func (s *server) handleDeleteNote(w http.ResponseWriter, r *http.Request, userID string) {
	err := s.store.DeleteNote(r.Context(), r.PathValue("id"), userID)
	if errors.Is(err, store.ErrNotFound) {
		service.WriteError(w, s.logger, service.NotFound("note not found"))
		return
	}
	if err != nil {
		service.WriteError(w, s.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// markdownInstance is initialized once and reused. The configuration
// never changes and goldmark.Markdown is safe to share; actual
// conversion creates per-call state.
var (
	markdownInstance goldmark.Markdown
	markdownOnce     sync.Once
)

func getMarkdown() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return markdownInstance
}

// handleNoteHTML renders the note's markdown content as an HTML
// fragment.
func (s *server) handleNoteHTML(w http.ResponseWriter, r *http.Request, userID string) {
	n, err := s.store.NoteByID(r.Context(), r.PathValue("id"), userID)
	if errors.Is(err, store.ErrNotFound) {
		service.WriteError(w, s.logger, service.NotFound("note not found"))
		return
	}
	if err != nil {
		service.WriteError(w, s.logger, err)
		return
	}

	var rendered bytes.Buffer
	if err := getMarkdown().Convert([]byte(n.Content), &rendered); err != nil {
		service.WriteError(w, s.logger, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(rendered.Bytes())
}
