// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"net/http"

	"github.com/hypergrow-online/OneDate/lib/schema/task"
	"github.com/hypergrow-online/OneDate/lib/service"
	"github.com/hypergrow-online/OneDate/lib/store"
)

// mutateTimer runs a timer transition through the store's atomic
// read-modify-write and writes the updated task, mapping domain errors
// to API errors.
func (s *server) mutateTimer(w http.ResponseWriter, r *http.Request, userID string, fn func(*task.Task) error) {
	updated, err := s.store.MutateTask(r.Context(), r.PathValue("id"), userID, s.clock.Now(), fn)
	switch {
	case errors.Is(err, store.ErrNotFound):
		service.WriteError(w, s.logger, service.NotFound("task not found"))
		return
	case errors.Is(err, task.ErrTimerNotRunning):
		service.WriteError(w, s.logger, service.Validation("timer is not running"))
		return
	case err != nil:
		service.WriteError(w, s.logger, err)
		return
	}
	service.WriteJSON(w, http.StatusOK, updated)
}

func (s *server) handleStartTimer(w http.ResponseWriter, r *http.Request, userID string) {
	now := s.clock.Now()
	s.mutateTimer(w, r, userID, func(t *task.Task) error {
		// Starting an already-running timer is a no-op, not an error.
		t.StartTimer(now)
		return nil
	})
}

func (s *server) handlePauseTimer(w http.ResponseWriter, r *http.Request, userID string) {
	now := s.clock.Now()
	s.mutateTimer(w, r, userID, func(t *task.Task) error {
		return t.PauseTimer(now)
	})
}

func (s *server) handleCompleteTask(w http.ResponseWriter, r *http.Request, userID string) {
	now := s.clock.Now()
	s.mutateTimer(w, r, userID, func(t *task.Task) error {
		t.Complete(now)
		return nil
	})
}
