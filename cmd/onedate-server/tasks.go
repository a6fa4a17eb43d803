// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/hypergrow-online/OneDate/lib/schema/task"
	"github.com/hypergrow-online/OneDate/lib/service"
	"github.com/hypergrow-online/OneDate/lib/store"
)

// createTaskRequest is the POST /api/v1/tasks body. Timer state is
// not settable at creation; tasks start idle.
type createTaskRequest struct {
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	Status              task.Status     `json:"status"`
	Priority            task.Priority   `json:"priority"`
	DueDate             *time.Time      `json:"due_date"`
	Tags                []string        `json:"tags"`
	MainObjectives      []string        `json:"main_objectives"`
	SecondaryObjectives []string        `json:"secondary_objectives"`
	Resources           []task.Resource `json:"resources"`
	ResourceLinks       []string        `json:"resource_links"`
	AdditionalNotes     string          `json:"additional_notes"`
	Subtasks            []task.Subtask  `json:"subtasks"`
}

func (s *server) handleCreateTask(w http.ResponseWriter, r *http.Request, userID string) {
	var request createTaskRequest
	if err := service.DecodeJSON(r, &request); err != nil {
		service.WriteError(w, s.logger, err)
		return
	}

	t := task.New(request.Title)
	t.Description = request.Description
	if request.Status != "" {
		t.Status = request.Status
	}
	if request.Priority != "" {
		t.Priority = request.Priority
	}
	t.DueDate = request.DueDate
	t.Tags = request.Tags
	t.MainObjectives = request.MainObjectives
	t.SecondaryObjectives = request.SecondaryObjectives
	t.Resources = request.Resources
	t.ResourceLinks = request.ResourceLinks
	t.AdditionalNotes = request.AdditionalNotes
	t.Subtasks = request.Subtasks

	if err := t.Validate(); err != nil {
		service.WriteError(w, s.logger, service.Validation(err.Error()))
		return
	}
	if err := s.store.CreateTask(r.Context(), t, userID, s.clock.Now()); err != nil {
		service.WriteError(w, s.logger, err)
		return
	}
	service.WriteJSON(w, http.StatusCreated, t)
}

// parsePagination reads skip and limit query parameters. Absent
// parameters default to skip 0 and the store's default page size.
func parsePagination(r *http.Request) (skip, limit int, err error) {
	if raw := r.URL.Query().Get("skip"); raw != "" {
		skip, err = strconv.Atoi(raw)
		if err != nil || skip < 0 {
			return 0, 0, service.Validation("skip must be a non-negative integer")
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return 0, 0, service.Validation("limit must be a non-negative integer")
		}
	}
	return skip, limit, nil
}

func (s *server) handleListTasks(w http.ResponseWriter, r *http.Request, userID string) {
	skip, limit, err := parsePagination(r)
	if err != nil {
		service.WriteError(w, s.logger, err)
		return
	}
	tasks, err := s.store.Tasks(r.Context(), userID, skip, limit)
	if err != nil {
		service.WriteError(w, s.logger, err)
		return
	}
	service.WriteJSON(w, http.StatusOK, tasks)
}

func (s *server) handleGetTask(w http.ResponseWriter, r *http.Request, userID string) {
	t, err := s.store.TaskByID(r.Context(), r.PathValue("id"), userID)
	if errors.Is(err, store.ErrNotFound) {
		service.WriteError(w, s.logger, service.NotFound("task not found"))
		return
	}
	if err != nil {
		service.WriteError(w, s.logger, err)
		return
	}
	service.WriteJSON(w, http.StatusOK, t)
}

func (s *server) handleUpdateTask(w http.ResponseWriter, r *http.Request, userID string) {
	var patch task.Patch
	if err := service.DecodeJSON(r, &patch); err != nil {
		service.WriteError(w, s.logger, err)
		return
	}

	updated, err := s.store.MutateTask(r.Context(), r.PathValue("id"), userID, s.clock.Now(),
		func(t *task.Task) error {
			patch.Apply(t)
			if err := t.Validate(); err != nil {
				return service.Validation(err.Error())
			}
			return nil
		})
	if errors.Is(err, store.ErrNotFound) {
		service.WriteError(w, s.logger, service.NotFound("task not found"))
		return
	}
	if err != nil {
		service.WriteError(w, s.logger, err)
		return
	}
	service.WriteJSON(w, http.StatusOK, updated)
}

func (s *server) handleDeleteTask(w http.ResponseWriter, r *http.Request, userID string) {
	err := s.store.DeleteTask(r.Context(), r.PathValue("id"), userID)
	if errors.Is(err, store.ErrNotFound) {
		service.WriteError(w, s.logger, service.NotFound("task not found"))
		return
	}
	if err != nil {
		service.WriteError(w, s.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
