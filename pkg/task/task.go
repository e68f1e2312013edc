package task

import (
	"time"

	"github.com/google/uuid"
)

// Task is one actionable item. A task may belong to a group, and once
// completed it may carry a reflection record.
//
// Invariants held by the app service:
//   - CompletedAt is set iff Completed is true.
//   - Reflection set implies Completed.
//   - A GroupID pointing at a deleted group is treated as ungrouped.
type Task struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	GroupID     *uuid.UUID  `json:"groupId,omitempty"`
	Completed   bool        `json:"isCompleted"`
	CreatedAt   time.Time   `json:"createdAt"`
	CompletedAt *time.Time  `json:"completedAt,omitempty"`
	Reflection  *Reflection `json:"reflection,omitempty"`
}

// New creates an open task created now.
func New(title, description string) *Task {
	return &Task{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
	}
}

// Complete marks the task done at the given time.
func (t *Task) Complete(now time.Time) {
	t.Completed = true
	t.CompletedAt = &now
}

// Reopen clears completion state. The reflection, if any, is dropped with it.
func (t *Task) Reopen() {
	t.Completed = false
	t.CompletedAt = nil
	t.Reflection = nil
}

// InGroup reports whether the task belongs to the given group.
func (t *Task) InGroup(id uuid.UUID) bool {
	return t.GroupID != nil && *t.GroupID == id
}
