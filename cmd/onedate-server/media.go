// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"io"
	"net/http"

	"github.com/hypergrow-online/OneDate/lib/mediastore"
	"github.com/hypergrow-online/OneDate/lib/schema/note"
	"github.com/hypergrow-online/OneDate/lib/service"
)

// maxUploadBytes bounds a single video upload.
const maxUploadBytes = 512 << 20

// handleUploadVideo accepts a multipart form {title, folder?, video}
// and creates a video note. The blob always lands in the local media
// store; when a remote uploader is configured the note links to the
// remote URL, falling back to the local /media/{id} URL if the remote
// upload fails.
func (s *server) handleUploadVideo(w http.ResponseWriter, r *http.Request, userID string) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		service.WriteError(w, s.logger, service.Validation("malformed multipart body"))
		return
	}

	title := r.FormValue("title")
	if title == "" {
		service.WriteError(w, s.logger, service.Validation("title is required"))
		return
	}

	file, header, err := r.FormFile("video")
	if err != nil {
		service.WriteError(w, s.logger, service.Validation("video file is required"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		service.WriteError(w, s.logger, err)
		return
	}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// Local storage first: the blob survives a remote outage either way.
	objectID, err := s.media.Put(data, contentType)
	if err != nil {
		service.WriteError(w, s.logger, err)
		return
	}

	videoURL := s.baseURL + "/media/" + objectID.String()
	if s.uploader != nil {
		remoteURL, err := s.uploader.Upload(r.Context(), header.Filename, contentType, data)
		if err != nil {
			s.logger.Warn("remote upload failed, serving locally",
				"object", objectID.String(),
				"error", err,
			)
		} else {
			videoURL = remoteURL
		}
	}

	n := note.New(title, r.FormValue("content"))
	if folder := r.FormValue("folder"); folder != "" {
		n.Folder = folder
	}
	n.NoteType = note.TypeVideo
	n.VideoURL = videoURL

	if err := s.store.CreateNote(r.Context(), n, userID, s.clock.Now()); err != nil {
		service.WriteError(w, s.logger, err)
		return
	}
	s.logger.Info("video note created",
		"note_id", n.ID,
		"object", objectID.String(),
		"size", len(data),
	)
	service.WriteJSON(w, http.StatusCreated, n)
}

// handleMedia serves a locally stored media object. Unauthenticated so
// that video players can fetch it without header control.
func (s *server) handleMedia(w http.ResponseWriter, r *http.Request) {
	hash, err := mediastore.ParseHash(r.PathValue("id"))
	if err != nil {
		service.WriteError(w, s.logger, service.NotFound("media object not found"))
		return
	}

	data, contentType, err := s.media.Get(hash)
	if errors.Is(err, mediastore.ErrObjectNotFound) {
		service.WriteError(w, s.logger, service.NotFound("media object not found"))
		return
	}
	if err != nil {
		service.WriteError(w, s.logger, err)
		return
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Write(data)
}
