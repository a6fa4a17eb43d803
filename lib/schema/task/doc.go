// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

// Package task defines the task document schema and the timer state
// machine.
//
// A task is a unit of work owned by exactly one user. Beyond the usual
// planning fields (status, priority, due date, tags, objectives,
// subtasks) a task carries a work timer: at most one running session at
// a time, an append-only log of completed sessions, and a running total
// of seconds spent.
//
// The timer is a two-state machine (idle and running) implemented as
// pure functions on the Task value. All transitions take the current
// time from the caller, so the HTTP layer feeds them its injected
// clock and tests feed them exact instants. Persistence and atomicity
// are the store's concern (lib/store wraps each transition in a
// single-document transaction); this package only computes the next
// state.
//
// Invariants maintained by the transitions:
//
//   - IsRunning is true exactly when CurrentSessionStart is set.
//   - TotalTimeSpent equals the sum of recorded entry durations.
//   - TimeEntries is append-only; pause and complete never rewrite
//     history.
package task
