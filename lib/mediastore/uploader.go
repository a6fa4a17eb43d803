// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package mediastore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Uploader pushes a media object to a remote storage backend and
// returns the public URL it is served from.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (string, error)
}

// RemoteUploader uploads objects to an HTTP storage service with a
// bearer token. The service is expected to accept a PUT of the raw
// bytes at <endpoint>/<filename> and respond with a JSON body
// containing the public URL.
type RemoteUploader struct {
	// Endpoint is the base URL of the storage service.
	Endpoint string

	// Token authenticates requests, sent as a bearer token. May be
	// empty for unauthenticated endpoints.
	Token string

	// Client is the HTTP client to use. If nil, a client with a
	// 30-second timeout is used.
	Client *http.Client
}

// maxUploadResponse bounds how much of the storage service's response
// body is read.
const maxUploadResponse = 1 << 20

// Upload sends data to the remote service and returns the URL the
// object is reachable at.
func (u *RemoteUploader) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	client := u.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	target, err := url.JoinPath(u.Endpoint, url.PathEscape(filename))
	if err != nil {
		return "", fmt.Errorf("mediastore: building upload URL: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPut, target, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("mediastore: building upload request: %w", err)
	}
	request.Header.Set("Content-Type", contentType)
	if u.Token != "" {
		request.Header.Set("Authorization", "Bearer "+u.Token)
	}

	response, err := client.Do(request)
	if err != nil {
		return "", fmt.Errorf("mediastore: upload: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxUploadResponse))
	if err != nil {
		return "", fmt.Errorf("mediastore: reading upload response: %w", err)
	}
	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("mediastore: upload: status %d: %s", response.StatusCode, body)
	}

	var result struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("mediastore: decoding upload response: %w", err)
	}
	if result.URL == "" {
		return "", fmt.Errorf("mediastore: upload response missing url")
	}
	return result.URL, nil
}
