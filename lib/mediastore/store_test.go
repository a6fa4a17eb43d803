// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package mediastore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func TestPutGetRoundTrip(t *testing.T) {
	s := newTestStore(t)
	payload := []byte("\x00\x00\x00\x18ftypmp42 fake video bytes")

	hash, err := s.Put(payload, "video/mp4")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	data, contentType, err := s.Get(hash)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Error("payload changed through store round trip")
	}
	if contentType != "video/mp4" {
		t.Errorf("content type = %q, want %q", contentType, "video/mp4")
	}
}

func TestPutDeduplicates(t *testing.T) {
	s := newTestStore(t)
	payload := []byte("same bytes both times")

	first, err := s.Put(payload, "application/octet-stream")
	if err != nil {
		t.Fatalf("first Put: %v", err)
	}
	second, err := s.Put(payload, "application/octet-stream")
	if err != nil {
		t.Fatalf("second Put: %v", err)
	}
	if first != second {
		t.Errorf("hashes differ: %s vs %s", first, second)
	}
}

func TestTextCompressedOnDisk(t *testing.T) {
	s := newTestStore(t)
	payload := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog\n", 200))

	hash, err := s.Put(payload, "text/plain")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	info, err := os.Stat(filepath.Join(s.dir, hash.String()))
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() >= int64(len(payload)) {
		t.Errorf("stored size %d not smaller than payload %d", info.Size(), len(payload))
	}

	data, _, err := s.Get(hash)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Error("payload changed through compression round trip")
	}
}

func TestGetUnknownObject(t *testing.T) {
	s := newTestStore(t)
	if _, _, err := s.Get(HashObject([]byte("never stored"))); !errors.Is(err, ErrObjectNotFound) {
		t.Errorf("Get unknown: got %v, want ErrObjectNotFound", err)
	}
}

func TestGetDetectsCorruption(t *testing.T) {
	s := newTestStore(t)
	hash, err := s.Put([]byte("original content"), "video/mp4")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	path := filepath.Join(s.dir, hash.String())
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	raw[len(raw)-1] ^= 0xff
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, _, err := s.Get(hash); err == nil {
		t.Fatal("Get of corrupted object: expected error")
	}
}

func TestParseHash(t *testing.T) {
	hash := HashObject([]byte("content"))
	parsed, err := ParseHash(hash.String())
	if err != nil {
		t.Fatalf("ParseHash: %v", err)
	}
	if parsed != hash {
		t.Error("ParseHash did not round-trip")
	}

	if _, err := ParseHash("abc"); err == nil {
		t.Error("ParseHash short input: expected error")
	}
	if _, err := ParseHash(strings.Repeat("zz", 32)); err == nil {
		t.Error("ParseHash non-hex input: expected error")
	}
}

func TestRemoteUploader(t *testing.T) {
	var gotPath, gotAuth, gotType string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"url": "https://media.example.com/clip.mp4"}`))
	}))
	defer server.Close()

	uploader := &RemoteUploader{Endpoint: server.URL, Token: "secret-token"}
	url, err := uploader.Upload(context.Background(), "clip.mp4", "video/mp4", []byte("video bytes"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if url != "https://media.example.com/clip.mp4" {
		t.Errorf("url = %q", url)
	}
	if gotPath != "/clip.mp4" {
		t.Errorf("request path = %q", gotPath)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if gotType != "video/mp4" {
		t.Errorf("content type = %q", gotType)
	}
	if string(gotBody) != "video bytes" {
		t.Errorf("body = %q", gotBody)
	}
}

func TestRemoteUploaderErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusInsufficientStorage)
	}))
	defer server.Close()

	uploader := &RemoteUploader{Endpoint: server.URL}
	if _, err := uploader.Upload(context.Background(), "clip.mp4", "video/mp4", []byte("x")); err == nil {
		t.Fatal("Upload against failing backend: expected error")
	}
}
