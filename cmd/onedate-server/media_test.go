// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"github.com/hypergrow-online/OneDate/lib/schema/note"
)

// fakeUploader is a scripted remote storage backend.
type fakeUploader struct {
	url string
	err error

	calls int
}

func (u *fakeUploader) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	u.calls++
	if u.err != nil {
		return "", u.err
	}
	return u.url, nil
}

// uploadVideo posts a multipart video upload and returns the recorder.
func uploadVideo(t *testing.T, ts *testServer, token, title string, payload []byte) *note.Note {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("title", title); err != nil {
		t.Fatalf("writing title field: %v", err)
	}
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="video"; filename="clip.mp4"`)
	header.Set("Content-Type", "video/mp4")
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("creating file part: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("writing file part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}

	recorder := ts.do(t, http.MethodPost, "/api/v1/notes/upload-video", token,
		&body, writer.FormDataContentType())
	if recorder.Code != http.StatusCreated {
		t.Fatalf("upload: status %d: %s", recorder.Code, recorder.Body)
	}
	created := &note.Note{}
	decode(t, recorder, created)
	return created
}

func TestUploadVideoLocalOnly(t *testing.T) {
	ts := newTestServer(t)
	token := ts.authedUser(t)
	payload := []byte("fake video payload")

	created := uploadVideo(t, ts, token, "Standup recording", payload)
	if created.NoteType != note.TypeVideo {
		t.Errorf("note type = %q, want video", created.NoteType)
	}
	if !strings.HasPrefix(created.VideoURL, "http://localhost:8000/media/") {
		t.Fatalf("video url = %q, want local media URL", created.VideoURL)
	}

	// The blob is downloadable at the note's URL path.
	path := strings.TrimPrefix(created.VideoURL, "http://localhost:8000")
	recorder := ts.do(t, http.MethodGet, path, "", nil, "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("media download: status %d", recorder.Code)
	}
	if !bytes.Equal(recorder.Body.Bytes(), payload) {
		t.Error("downloaded payload differs from upload")
	}
	if ct := recorder.Header().Get("Content-Type"); ct != "video/mp4" {
		t.Errorf("content type = %q", ct)
	}
}

func TestUploadVideoRemote(t *testing.T) {
	ts := newTestServer(t)
	uploader := &fakeUploader{url: "https://media.example.com/clip.mp4"}
	ts.srv.uploader = uploader
	token := ts.authedUser(t)

	created := uploadVideo(t, ts, token, "Demo", []byte("payload"))
	if created.VideoURL != "https://media.example.com/clip.mp4" {
		t.Errorf("video url = %q, want remote URL", created.VideoURL)
	}
	if uploader.calls != 1 {
		t.Errorf("uploader called %d times", uploader.calls)
	}
}

func TestUploadVideoRemoteFailureFallsBackLocal(t *testing.T) {
	ts := newTestServer(t)
	ts.srv.uploader = &fakeUploader{err: errors.New("remote storage down")}
	token := ts.authedUser(t)
	payload := []byte("resilient payload")

	created := uploadVideo(t, ts, token, "Survives outages", payload)
	if !strings.HasPrefix(created.VideoURL, "http://localhost:8000/media/") {
		t.Fatalf("video url = %q, want local fallback", created.VideoURL)
	}

	path := strings.TrimPrefix(created.VideoURL, "http://localhost:8000")
	recorder := ts.do(t, http.MethodGet, path, "", nil, "")
	if recorder.Code != http.StatusOK || !bytes.Equal(recorder.Body.Bytes(), payload) {
		t.Errorf("fallback blob not served: status %d", recorder.Code)
	}
}

func TestUploadVideoValidation(t *testing.T) {
	ts := newTestServer(t)
	token := ts.authedUser(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	writer.WriteField("title", "No file attached")
	writer.Close()

	recorder := ts.do(t, http.MethodPost, "/api/v1/notes/upload-video", token,
		&body, writer.FormDataContentType())
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("missing file: status %d, want 400", recorder.Code)
	}
}

func TestMediaUnknownObject(t *testing.T) {
	ts := newTestServer(t)

	recorder := ts.do(t, http.MethodGet, "/media/not-a-hash", "", nil, "")
	if recorder.Code != http.StatusNotFound {
		t.Errorf("bogus id: status %d, want 404", recorder.Code)
	}
	recorder = ts.do(t, http.MethodGet, "/media/"+strings.Repeat("ab", 32), "", nil, "")
	if recorder.Code != http.StatusNotFound {
		t.Errorf("unknown hash: status %d, want 404", recorder.Code)
	}
}
