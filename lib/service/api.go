// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// Error is an API error with an HTTP status and a detail string that
// is safe to show to clients.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Detail)
}

// Validation returns a 400 error.
func Validation(detail string) *Error {
	return &Error{Status: http.StatusBadRequest, Detail: detail}
}

// Unauthorized returns a 401 error.
func Unauthorized(detail string) *Error {
	return &Error{Status: http.StatusUnauthorized, Detail: detail}
}

// NotFound returns a 404 error.
func NotFound(detail string) *Error {
	return &Error{Status: http.StatusNotFound, Detail: detail}
}

// errorEnvelope is the JSON body of every error response.
type errorEnvelope struct {
	Detail string `json:"detail"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already sent; nothing useful to do.
		return
	}
}

// WriteError renders err as a {"detail": ...} response. A [*Error]
// keeps its status and detail; any other error is logged and rendered
// as an opaque 500 so internals never reach clients. Unauthorized
// responses carry a WWW-Authenticate challenge.
func WriteError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		logger.Error("internal error", "error", err)
		apiErr = &Error{Status: http.StatusInternalServerError, Detail: "internal server error"}
	}
	if apiErr.Status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	WriteJSON(w, apiErr.Status, errorEnvelope{Detail: apiErr.Detail})
}

// maxRequestBody bounds JSON request bodies. Media uploads use
// multipart and have their own limit.
const maxRequestBody = 1 << 20

// DecodeJSON decodes the request body into v. Returns a 400 [*Error]
// on malformed input.
func DecodeJSON(r *http.Request, v any) error {
	body := http.MaxBytesReader(nil, r.Body, maxRequestBody)
	decoder := json.NewDecoder(body)
	if err := decoder.Decode(v); err != nil {
		return Validation("malformed JSON body")
	}
	// Reject trailing garbage after the JSON value.
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return Validation("malformed JSON body")
	}
	return nil
}
