// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package task

import (
	"errors"
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func TestStartSetsSession(t *testing.T) {
	tk := New("write report")

	if !tk.StartTimer(epoch) {
		t.Fatal("StartTimer reported no change on an idle task")
	}
	if !tk.IsRunning {
		t.Error("IsRunning false after start")
	}
	if tk.CurrentSessionStart == nil || !tk.CurrentSessionStart.Equal(epoch) {
		t.Errorf("CurrentSessionStart: got %v, want %v", tk.CurrentSessionStart, epoch)
	}
	if err := tk.Validate(); err != nil {
		t.Errorf("Validate after start: %v", err)
	}
}

func TestStartIsIdempotent(t *testing.T) {
	tk := New("write report")
	tk.StartTimer(epoch)

	if tk.StartTimer(epoch.Add(10 * time.Second)) {
		t.Error("StartTimer changed an already-running task")
	}
	if !tk.CurrentSessionStart.Equal(epoch) {
		t.Errorf("session start moved: got %v, want %v", tk.CurrentSessionStart, epoch)
	}
	if len(tk.TimeEntries) != 0 {
		t.Errorf("start created %d entries", len(tk.TimeEntries))
	}
}

func TestPauseRecordsEntry(t *testing.T) {
	tk := New("write report")
	tk.StartTimer(epoch)

	// Start at t0, pause at t0+65s.
	pauseAt := epoch.Add(65 * time.Second)
	if err := tk.PauseTimer(pauseAt); err != nil {
		t.Fatalf("PauseTimer: %v", err)
	}

	if tk.IsRunning {
		t.Error("IsRunning true after pause")
	}
	if tk.CurrentSessionStart != nil {
		t.Error("CurrentSessionStart survived pause")
	}
	if len(tk.TimeEntries) != 1 {
		t.Fatalf("entries: got %d, want 1", len(tk.TimeEntries))
	}
	entry := tk.TimeEntries[0]
	if entry.DurationSeconds != 65 {
		t.Errorf("entry duration: got %d, want 65", entry.DurationSeconds)
	}
	if !entry.StartTime.Equal(epoch) || !entry.EndTime.Equal(pauseAt) {
		t.Errorf("entry bounds: got [%v, %v]", entry.StartTime, entry.EndTime)
	}
	if tk.TotalTimeSpent != 65 {
		t.Errorf("TotalTimeSpent: got %d, want 65", tk.TotalTimeSpent)
	}
}

func TestPauseTruncatesSubSecond(t *testing.T) {
	tk := New("quick check")
	tk.StartTimer(epoch)

	if err := tk.PauseTimer(epoch.Add(2900 * time.Millisecond)); err != nil {
		t.Fatalf("PauseTimer: %v", err)
	}
	if tk.TimeEntries[0].DurationSeconds != 2 {
		t.Errorf("duration: got %d, want 2 (truncated)", tk.TimeEntries[0].DurationSeconds)
	}
}

func TestPauseWhileIdleFails(t *testing.T) {
	tk := New("write report")

	if err := tk.PauseTimer(epoch); !errors.Is(err, ErrTimerNotRunning) {
		t.Errorf("PauseTimer on idle task: got %v, want ErrTimerNotRunning", err)
	}

	// Also after a full start/pause cycle.
	tk.StartTimer(epoch)
	if err := tk.PauseTimer(epoch.Add(time.Second)); err != nil {
		t.Fatalf("PauseTimer: %v", err)
	}
	if err := tk.PauseTimer(epoch.Add(2 * time.Second)); !errors.Is(err, ErrTimerNotRunning) {
		t.Errorf("second pause: got %v, want ErrTimerNotRunning", err)
	}
}

func TestTotalMatchesEntrySum(t *testing.T) {
	tk := New("write report")

	now := epoch
	for _, seconds := range []int{65, 5, 1200, 1} {
		tk.StartTimer(now)
		now = now.Add(time.Duration(seconds) * time.Second)
		if err := tk.PauseTimer(now); err != nil {
			t.Fatalf("PauseTimer: %v", err)
		}
		now = now.Add(time.Minute) // idle gap, must not count
	}

	sum := 0
	for _, entry := range tk.TimeEntries {
		sum += entry.DurationSeconds
	}
	if tk.TotalTimeSpent != sum {
		t.Errorf("TotalTimeSpent %d != entry sum %d", tk.TotalTimeSpent, sum)
	}
	if tk.TotalTimeSpent != 65+5+1200+1 {
		t.Errorf("TotalTimeSpent: got %d, want %d", tk.TotalTimeSpent, 65+5+1200+1)
	}
}

func TestCompleteWhileRunning(t *testing.T) {
	tk := New("write report")
	tk.StartTimer(epoch)

	done := epoch.Add(90 * time.Second)
	tk.Complete(done)

	if tk.Status != StatusDone {
		t.Errorf("status: got %q, want done", tk.Status)
	}
	if tk.IsRunning || tk.CurrentSessionStart != nil {
		t.Error("timer still open after complete")
	}
	if len(tk.TimeEntries) != 1 || tk.TimeEntries[0].DurationSeconds != 90 {
		t.Errorf("entries after complete: %+v", tk.TimeEntries)
	}
	if tk.TotalTimeSpent != 90 {
		t.Errorf("TotalTimeSpent: got %d, want 90", tk.TotalTimeSpent)
	}
	if tk.CompletionDate == nil || !tk.CompletionDate.Equal(done) {
		t.Errorf("CompletionDate: got %v, want %v", tk.CompletionDate, done)
	}
}

func TestCompleteWhileIdle(t *testing.T) {
	tk := New("write report")

	tk.Complete(epoch)

	if tk.Status != StatusDone {
		t.Errorf("status: got %q, want done", tk.Status)
	}
	if len(tk.TimeEntries) != 0 {
		t.Errorf("idle complete created %d entries", len(tk.TimeEntries))
	}
	if tk.TotalTimeSpent != 0 {
		t.Errorf("TotalTimeSpent: got %d, want 0", tk.TotalTimeSpent)
	}
	if tk.CompletionDate == nil || !tk.CompletionDate.Equal(epoch) {
		t.Errorf("CompletionDate: got %v, want %v", tk.CompletionDate, epoch)
	}
}

func TestValidateInvariant(t *testing.T) {
	tk := New("write report")
	tk.IsRunning = true // no session start
	if err := tk.Validate(); err == nil {
		t.Error("Validate accepted running without session start")
	}

	tk = New("write report")
	start := epoch
	tk.CurrentSessionStart = &start // idle with session start
	if err := tk.Validate(); err == nil {
		t.Error("Validate accepted session start while idle")
	}
}
