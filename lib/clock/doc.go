// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction for testability.
//
// Production code accepts a Clock parameter instead of calling time.Now
// directly. In production, Real() provides standard library behavior.
// In tests, Fake() provides a deterministic clock that moves only when
// Advance or Set is called.
//
// The timer accounting in lib/schema/task is the main consumer: every
// session duration is computed from a caller-supplied "now", and the
// HTTP handlers obtain that now from the server's Clock. Tests drive
// the fake clock forward by exact durations and assert exact recorded
// durations, with no wall-clock sleeps anywhere in the suite.
package clock
