// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package task

import (
	"errors"
	"time"
)

// ErrTimerNotRunning is returned by PauseTimer when the task has no
// open session.
var ErrTimerNotRunning = errors.New("task: timer is not running")

// StartTimer opens a work session at now. Starting an already-running
// timer is a no-op: the state is returned unchanged and no entry is
// created. Reports whether the call changed the task.
func (t *Task) StartTimer(now time.Time) bool {
	if t.IsRunning {
		return false
	}
	start := now
	t.IsRunning = true
	t.CurrentSessionStart = &start
	return true
}

// PauseTimer closes the open session at now: records a time entry for
// the interval, adds its truncated-seconds duration to TotalTimeSpent,
// and returns the timer to idle. Fails with ErrTimerNotRunning when
// there is no open session.
func (t *Task) PauseTimer(now time.Time) error {
	if !t.IsRunning || t.CurrentSessionStart == nil {
		return ErrTimerNotRunning
	}

	start := *t.CurrentSessionStart
	duration := int(now.Sub(start).Seconds())
	if duration < 0 {
		duration = 0
	}

	t.TimeEntries = append(t.TimeEntries, TimeEntry{
		StartTime:       start,
		EndTime:         now,
		DurationSeconds: duration,
	})
	t.TotalTimeSpent += duration
	t.CurrentSessionStart = nil
	t.IsRunning = false
	return nil
}

// Complete marks the task done at now. A running session is finalized
// with the same accounting as PauseTimer before the status changes, so
// no intermediate state is ever persisted. Completing an idle task
// records the completion date without creating a time entry.
func (t *Task) Complete(now time.Time) {
	if t.IsRunning {
		// Cannot fail: IsRunning implies an open session.
		_ = t.PauseTimer(now)
	}
	completed := now
	t.Status = StatusDone
	t.CompletionDate = &completed
}
