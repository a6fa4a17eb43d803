// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package task

import (
	"fmt"
	"time"
)

// Status is the workflow state of a task.
type Status string

const (
	StatusBacklog    Status = "backlog"
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// ValidStatus reports whether s is a known workflow state.
func ValidStatus(s Status) bool {
	switch s {
	case StatusBacklog, StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Priority is the urgency ranking of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ValidPriority reports whether p is a known priority.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// TimeEntry is one completed timer session: a contiguous running
// interval bounded by start and pause/complete. Entries are append-only.
type TimeEntry struct {
	// StartTime is when the session began.
	StartTime time.Time `json:"start_time" cbor:"start_time"`

	// EndTime is when the session was paused or completed.
	EndTime time.Time `json:"end_time" cbor:"end_time"`

	// DurationSeconds is EndTime - StartTime truncated to whole
	// seconds.
	DurationSeconds int `json:"duration_seconds" cbor:"duration_seconds"`
}

// Subtask is a checklist item within a task. Opaque to the timer.
type Subtask struct {
	ID        string `json:"id,omitempty" cbor:"id,omitempty"`
	Title     string `json:"title" cbor:"title"`
	Completed bool   `json:"completed" cbor:"completed"`
}

// Resource is a reference material attached to a task's plan.
type Resource struct {
	Name        string `json:"name" cbor:"name"`
	URL         string `json:"url,omitempty" cbor:"url,omitempty"`
	Description string `json:"description,omitempty" cbor:"description,omitempty"`
}

// Task is a unit of work owned by one user.
type Task struct {
	// ID is the generated document identifier.
	ID string `json:"id" cbor:"id"`

	// OwnerID is the owning user's ID. Immutable after creation;
	// every read and write is filtered by it.
	OwnerID string `json:"user_id" cbor:"owner_id"`

	Title       string   `json:"title" cbor:"title"`
	Description string   `json:"description,omitempty" cbor:"description,omitempty"`
	Status      Status   `json:"status" cbor:"status"`
	Priority    Priority `json:"priority" cbor:"priority"`

	// DueDate is the target date, informational only.
	DueDate *time.Time `json:"due_date,omitempty" cbor:"due_date,omitempty"`

	Tags []string `json:"tags" cbor:"tags,omitempty"`

	// Planning fields. The timer never reads these.
	MainObjectives      []string   `json:"main_objectives" cbor:"main_objectives,omitempty"`
	SecondaryObjectives []string   `json:"secondary_objectives" cbor:"secondary_objectives,omitempty"`
	Resources           []Resource `json:"resources" cbor:"resources,omitempty"`
	ResourceLinks       []string   `json:"resource_links" cbor:"resource_links,omitempty"`
	AdditionalNotes     string     `json:"additional_notes,omitempty" cbor:"additional_notes,omitempty"`
	Subtasks            []Subtask  `json:"subtasks" cbor:"subtasks,omitempty"`

	// Timer state. IsRunning is true exactly when CurrentSessionStart
	// is set; TotalTimeSpent is the sum of entry durations.
	IsRunning           bool        `json:"is_running" cbor:"is_running"`
	CurrentSessionStart *time.Time  `json:"current_session_start,omitempty" cbor:"current_session_start,omitempty"`
	TotalTimeSpent      int         `json:"total_time_spent" cbor:"total_time_spent"`
	TimeEntries         []TimeEntry `json:"time_entries" cbor:"time_entries,omitempty"`

	// CompletionDate is set when the task transitions to done.
	CompletionDate *time.Time `json:"completion_date,omitempty" cbor:"completion_date,omitempty"`

	CreatedAt time.Time `json:"created_at" cbor:"created_at"`
	UpdatedAt time.Time `json:"updated_at" cbor:"updated_at"`
}

// New returns a task with defaults applied: backlog status, medium
// priority, idle timer. ID and OwnerID are assigned by the store.
func New(title string) *Task {
	return &Task{
		Title:    title,
		Status:   StatusBacklog,
		Priority: PriorityMedium,
	}
}

// Validate checks field constraints. The timer accounting identity
// (TotalTimeSpent == sum of entry durations) is maintained by the
// transitions, not checked here: generic field updates are allowed to
// overwrite timer fields, and rejecting historical documents that a
// client patched inconsistently would make them unreadable.
func (t *Task) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("task: title is required")
	}
	if !ValidStatus(t.Status) {
		return fmt.Errorf("task: invalid status %q", t.Status)
	}
	if !ValidPriority(t.Priority) {
		return fmt.Errorf("task: invalid priority %q", t.Priority)
	}
	if t.TotalTimeSpent < 0 {
		return fmt.Errorf("task: total_time_spent must be non-negative")
	}
	for i, entry := range t.TimeEntries {
		if entry.DurationSeconds < 0 {
			return fmt.Errorf("task: time entry %d has negative duration", i)
		}
		if entry.EndTime.Before(entry.StartTime) {
			return fmt.Errorf("task: time entry %d ends before it starts", i)
		}
	}
	if t.IsRunning && t.CurrentSessionStart == nil {
		return fmt.Errorf("task: running without a session start")
	}
	if !t.IsRunning && t.CurrentSessionStart != nil {
		return fmt.Errorf("task: session start set while idle")
	}
	return nil
}
