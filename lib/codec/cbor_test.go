// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"testing"
	"time"
)

type sample struct {
	Title string     `cbor:"title"`
	Tags  []string   `cbor:"tags,omitempty"`
	Due   *time.Time `cbor:"due,omitempty"`
	Spent int        `cbor:"spent"`
}

func TestRoundTrip(t *testing.T) {
	due := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	in := sample{Title: "write report", Tags: []string{"work"}, Due: &due, Spent: 65}

	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out sample
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.Title != in.Title || out.Spent != in.Spent {
		t.Errorf("round trip mismatch: got %+v, want %+v", out, in)
	}
	if out.Due == nil || !out.Due.Equal(due) {
		t.Errorf("due: got %v, want %v", out.Due, due)
	}
}

func TestDeterministicEncoding(t *testing.T) {
	in := sample{Title: "same bytes", Tags: []string{"a", "b"}, Spent: 1}

	first, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	second, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("same value encoded to different bytes")
	}
}

func TestUnknownFieldsIgnored(t *testing.T) {
	data, err := Marshal(map[string]any{
		"title":        "old payload",
		"spent":        3,
		"future_field": "added by a newer version",
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out sample
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.Title != "old payload" || out.Spent != 3 {
		t.Errorf("decoded %+v", out)
	}
}

func TestAnyTargetUsesStringKeyedMaps(t *testing.T) {
	data, err := Marshal(map[string]any{"nested": map[string]any{"k": "v"}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out any
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	top, ok := out.(map[string]any)
	if !ok {
		t.Fatalf("top-level type: got %T, want map[string]any", out)
	}
	if _, ok := top["nested"].(map[string]any); !ok {
		t.Fatalf("nested type: got %T, want map[string]any", top["nested"])
	}
}
