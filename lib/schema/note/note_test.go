// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package note

import (
	"encoding/json"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	n := New("meeting notes", "discussed timeline")
	if n.Folder != DefaultFolder {
		t.Errorf("folder: got %q, want %q", n.Folder, DefaultFolder)
	}
	if n.NoteType != TypeText {
		t.Errorf("note type: got %q, want text", n.NoteType)
	}
	if err := n.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	n := New("", "content")
	if err := n.Validate(); err == nil {
		t.Error("Validate accepted empty title")
	}

	n = New("video", "")
	n.NoteType = TypeVideo
	if err := n.Validate(); err == nil {
		t.Error("Validate accepted video note without URL")
	}
	n.VideoURL = "http://localhost:8000/media/abc"
	if err := n.Validate(); err != nil {
		t.Errorf("Validate video note: %v", err)
	}

	n = New("bad type", "")
	n.NoteType = "audio"
	if err := n.Validate(); err == nil {
		t.Error("Validate accepted unknown note type")
	}
}

func TestPatchSemantics(t *testing.T) {
	n := New("title", "content")
	n.Tags = []string{"keep"}

	var patch Patch
	if err := json.Unmarshal([]byte(`{"content":"updated","folder":null}`), &patch); err != nil {
		t.Fatalf("unmarshal patch: %v", err)
	}
	patch.Apply(n)

	if n.Content != "updated" {
		t.Errorf("content: got %q", n.Content)
	}
	if n.Folder != DefaultFolder {
		t.Errorf("explicit null cleared folder: got %q", n.Folder)
	}
	if len(n.Tags) != 1 {
		t.Errorf("absent tags field modified tags: got %v", n.Tags)
	}
}
