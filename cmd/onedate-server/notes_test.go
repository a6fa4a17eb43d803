// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"net/http"
	"strings"
	"testing"

	"github.com/hypergrow-online/OneDate/lib/schema/note"
)

func createNote(t *testing.T, ts *testServer, token, body string) *note.Note {
	t.Helper()
	recorder := ts.doJSON(t, http.MethodPost, "/api/v1/notes", token, body)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("create note: status %d: %s", recorder.Code, recorder.Body)
	}
	created := &note.Note{}
	decode(t, recorder, created)
	return created
}

func TestNoteLifecycle(t *testing.T) {
	ts := newTestServer(t)
	token := ts.authedUser(t)

	created := createNote(t, ts, token, `{"title": "Meeting notes", "content": "Discussed roadmap"}`)
	if created.Folder != note.DefaultFolder {
		t.Errorf("folder = %q, want %q", created.Folder, note.DefaultFolder)
	}
	if created.NoteType != note.TypeText {
		t.Errorf("note type = %q, want text", created.NoteType)
	}

	recorder := ts.doJSON(t, http.MethodPut, "/api/v1/notes/"+created.ID, token,
		`{"folder": "Work"}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("update note: status %d: %s", recorder.Code, recorder.Body)
	}
	var updated note.Note
	decode(t, recorder, &updated)
	if updated.Folder != "Work" {
		t.Errorf("folder = %q", updated.Folder)
	}
	if updated.Content != "Discussed roadmap" {
		t.Errorf("content = %q, untouched field changed", updated.Content)
	}

	recorder = ts.do(t, http.MethodDelete, "/api/v1/notes/"+created.ID, token, nil, "")
	if recorder.Code != http.StatusNoContent {
		t.Fatalf("delete note: status %d", recorder.Code)
	}
	recorder = ts.do(t, http.MethodGet, "/api/v1/notes/"+created.ID, token, nil, "")
	if recorder.Code != http.StatusNotFound {
		t.Errorf("get deleted note: status %d, want 404", recorder.Code)
	}
}

func TestNoteValidation(t *testing.T) {
	ts := newTestServer(t)
	token := ts.authedUser(t)

	recorder := ts.doJSON(t, http.MethodPost, "/api/v1/notes", token, `{"title": ""}`)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("empty title: status %d, want 400", recorder.Code)
	}
}

func TestNoteSearch(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.authedUser(t)
	bob := ts.authedUser(t)

	createNote(t, ts, alice, `{"title": "Grocery List", "content": "milk and eggs"}`)
	createNote(t, ts, alice, `{"title": "Plans", "content": "buy groceries tomorrow"}`)
	createNote(t, ts, alice, `{"title": "Unrelated", "content": "nothing"}`)
	createNote(t, ts, bob, `{"title": "Bob groceries", "content": "bread"}`)

	recorder := ts.do(t, http.MethodGet, "/api/v1/notes/search?q=GROCER", alice, nil, "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("search: status %d: %s", recorder.Code, recorder.Body)
	}
	var results []note.Note
	decode(t, recorder, &results)
	if len(results) != 2 {
		t.Errorf("search matched %d notes, want 2", len(results))
	}

	recorder = ts.do(t, http.MethodGet, "/api/v1/notes/search?q=", alice, nil, "")
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("empty query: status %d, want 400", recorder.Code)
	}
}

func TestNoteHTML(t *testing.T) {
	ts := newTestServer(t)
	token := ts.authedUser(t)
	created := createNote(t, ts, token,
		`{"title": "Readme", "content": "# Hello\n\nSome **bold** text."}`)

	recorder := ts.do(t, http.MethodGet, "/api/v1/notes/"+created.ID+"/html", token, nil, "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("html: status %d: %s", recorder.Code, recorder.Body)
	}
	body := recorder.Body.String()
	if !strings.Contains(body, "<h1>Hello</h1>") || !strings.Contains(body, "<strong>bold</strong>") {
		t.Errorf("rendered html = %q", body)
	}
	if ct := recorder.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
}
