// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package note

import (
	"fmt"
	"time"
)

// Type distinguishes plain text notes from video notes.
type Type string

const (
	TypeText  Type = "text"
	TypeVideo Type = "video"
)

// ValidType reports whether t is a known note type.
func ValidType(t Type) bool {
	return t == TypeText || t == TypeVideo
}

// DefaultFolder is assigned when a note is created without a folder.
const DefaultFolder = "General"

// Note is a freeform document owned by one user.
type Note struct {
	// ID is the generated document identifier.
	ID string `json:"id" cbor:"id"`

	// OwnerID is the owning user's ID. Immutable after creation.
	OwnerID string `json:"user_id" cbor:"owner_id"`

	Title   string   `json:"title" cbor:"title"`
	Content string   `json:"content" cbor:"content"`
	Folder  string   `json:"folder" cbor:"folder"`
	Tags    []string `json:"tags" cbor:"tags,omitempty"`

	// NoteType is "text" or "video". VideoURL is set only for video
	// notes and points at the uploaded recording (remote storage URL
	// or local media path).
	NoteType Type   `json:"note_type" cbor:"note_type"`
	VideoURL string `json:"video_url,omitempty" cbor:"video_url,omitempty"`

	CreatedAt time.Time `json:"created_at" cbor:"created_at"`
	UpdatedAt time.Time `json:"updated_at" cbor:"updated_at"`
}

// New returns a text note with defaults applied. ID and OwnerID are
// assigned by the store.
func New(title, content string) *Note {
	return &Note{
		Title:    title,
		Content:  content,
		Folder:   DefaultFolder,
		NoteType: TypeText,
	}
}

// Validate checks field constraints.
func (n *Note) Validate() error {
	if n.Title == "" {
		return fmt.Errorf("note: title is required")
	}
	if !ValidType(n.NoteType) {
		return fmt.Errorf("note: invalid note type %q", n.NoteType)
	}
	if n.NoteType == TypeVideo && n.VideoURL == "" {
		return fmt.Errorf("note: video notes require a video URL")
	}
	return nil
}

// Patch is a partial update to a note. Only non-nil fields are
// applied; an explicit JSON null decodes to nil and cannot clear a
// field. NoteType and VideoURL are set at creation (upload) and not
// patchable.
type Patch struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Folder  *string   `json:"folder"`
	Tags    *[]string `json:"tags"`
}

// Apply copies every non-nil patch field onto n. The caller stamps
// UpdatedAt and re-validates afterwards.
func (p *Patch) Apply(n *Note) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Folder != nil {
		n.Folder = *p.Folder
	}
	if p.Tags != nil {
		n.Tags = *p.Tags
	}
}
