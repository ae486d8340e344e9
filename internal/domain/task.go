package domain

import "strings"

type Task struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
}

// TaskFields is a full task body. Fields left nil fall back to their
// defaults when the task is stored.
type TaskFields struct {
	Title       string
	Description *string
	Completed   *bool
}

// Task builds a fully populated task from the fields, without an ID.
func (f TaskFields) Task() Task {
	task := Task{Title: f.Title}
	if f.Description != nil {
		task.Description = *f.Description
	}
	if f.Completed != nil {
		task.Completed = *f.Completed
	}

	return task
}

// TaskPatch carries only the fields a caller explicitly provided.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil
}

// Apply overwrites the provided fields of t and keeps the rest.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}

	return t
}

// NormalizeTitle trims surrounding whitespace; an empty result is not a valid title.
func NormalizeTitle(title string) (string, bool) {
	title = strings.TrimSpace(title)
	return title, title != ""
}
