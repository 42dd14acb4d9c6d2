package domain

import "time"

// Task represents a tracked task in the domain model.
//
// Group is a soft reference: it does not have to resolve to an existing Group.
// Processed latches once the task has been scored and is never cleared by this
// package. Ongoing tasks are excluded from scoring entirely.
type Task struct {
	ID        uint32
	CreatedAt uint32 // unix seconds
	Priority  uint32
	Tag       uint32
	Group     uint32
	Complete  bool
	Processed bool
	Ongoing   bool
	Text      string
}

// NewTask creates a Task with the given text, created at the given time.
// All flags start false and the task belongs to the default group.
func NewTask(text string, createdAt time.Time) Task {
	return Task{
		Text:      text,
		CreatedAt: uint32(createdAt.Unix()),
		Group:     DefaultGroupID,
	}
}

// Created returns the creation timestamp as a time.Time.
func (t Task) Created() time.Time {
	return time.Unix(int64(t.CreatedAt), 0)
}

// String returns the task text for display purposes.
func (t Task) String() string {
	return t.Text
}
