// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"testing"
	"time"
)

func TestFakeClockFrozen(t *testing.T) {
	epoch := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	c := Fake(epoch)

	if got := c.Now(); !got.Equal(epoch) {
		t.Errorf("Now: got %v, want %v", got, epoch)
	}
	if got := c.Now(); !got.Equal(epoch) {
		t.Errorf("Now moved without Advance: got %v", got)
	}
}

func TestFakeClockAdvance(t *testing.T) {
	epoch := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	c := Fake(epoch)

	c.Advance(65 * time.Second)
	want := epoch.Add(65 * time.Second)
	if got := c.Now(); !got.Equal(want) {
		t.Errorf("Now after Advance: got %v, want %v", got, want)
	}
}

func TestFakeClockSet(t *testing.T) {
	c := Fake(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC))

	target := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	c.Set(target)
	if got := c.Now(); !got.Equal(target) {
		t.Errorf("Now after Set: got %v, want %v", got, target)
	}
}

func TestFakeClockNegativeAdvancePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for negative Advance")
		}
	}()
	Fake(time.Now()).Advance(-time.Second)
}

func TestRealClockMoves(t *testing.T) {
	c := Real()
	before := c.Now()
	if c.Now().Before(before) {
		t.Error("real clock went backwards")
	}
}
