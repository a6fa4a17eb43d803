// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package task

import "time"

// Patch is a partial update to a task. Pointer fields distinguish
// "not provided" (nil) from "set to zero value" (non-nil pointing to
// the zero value). Only non-nil fields are applied; an explicit JSON
// null decodes to nil and therefore cannot clear a field.
//
// ID, OwnerID, and CreatedAt are not patchable. Timer fields are
// patchable for parity with full-document imports, but the timer
// endpoints are the supported way to mutate them.
type Patch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Status      *Status   `json:"status"`
	Priority    *Priority `json:"priority"`

	DueDate *time.Time `json:"due_date"`
	Tags    *[]string  `json:"tags"`

	MainObjectives      *[]string   `json:"main_objectives"`
	SecondaryObjectives *[]string   `json:"secondary_objectives"`
	Resources           *[]Resource `json:"resources"`
	ResourceLinks       *[]string   `json:"resource_links"`
	AdditionalNotes     *string     `json:"additional_notes"`
	Subtasks            *[]Subtask  `json:"subtasks"`

	IsRunning           *bool        `json:"is_running"`
	CurrentSessionStart *time.Time   `json:"current_session_start"`
	TotalTimeSpent      *int         `json:"total_time_spent"`
	TimeEntries         *[]TimeEntry `json:"time_entries"`
	CompletionDate      *time.Time   `json:"completion_date"`
}

// Apply copies every non-nil patch field onto t. The caller stamps
// UpdatedAt and re-validates afterwards.
func (p *Patch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		due := *p.DueDate
		t.DueDate = &due
	}
	if p.Tags != nil {
		t.Tags = *p.Tags
	}
	if p.MainObjectives != nil {
		t.MainObjectives = *p.MainObjectives
	}
	if p.SecondaryObjectives != nil {
		t.SecondaryObjectives = *p.SecondaryObjectives
	}
	if p.Resources != nil {
		t.Resources = *p.Resources
	}
	if p.ResourceLinks != nil {
		t.ResourceLinks = *p.ResourceLinks
	}
	if p.AdditionalNotes != nil {
		t.AdditionalNotes = *p.AdditionalNotes
	}
	if p.Subtasks != nil {
		t.Subtasks = *p.Subtasks
	}
	if p.IsRunning != nil {
		t.IsRunning = *p.IsRunning
	}
	if p.CurrentSessionStart != nil {
		start := *p.CurrentSessionStart
		t.CurrentSessionStart = &start
	}
	if p.TotalTimeSpent != nil {
		t.TotalTimeSpent = *p.TotalTimeSpent
	}
	if p.TimeEntries != nil {
		t.TimeEntries = *p.TimeEntries
	}
	if p.CompletionDate != nil {
		completed := *p.CompletionDate
		t.CompletionDate = &completed
	}
}
