// Package model holds the task tracker's domain entities: tasks, the users
// that own them, and the registry of users.
package model

import (
	"errors"
	"strings"
)

// Status glyphs used when a task is rendered.
const (
	GlyphDone    = "✅"
	GlyphPending = "⭕"
)

// ErrEmptyTitle is returned when a task is created without a title.
var ErrEmptyTitle = errors.New("task title must not be empty")

// Task is a titled unit of work with a binary completion state.
// The title is fixed at construction.
type Task struct {
	title     string
	completed bool
}

// NewTask returns an incomplete task.
func NewTask(title string) (*Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	return &Task{title: title}, nil
}

func (t *Task) Title() string   { return t.title }
func (t *Task) Completed() bool { return t.completed }

// Complete marks the task done. Calling it again is a no-op.
func (t *Task) Complete() { t.completed = true }

// Glyph returns the status glyph for the task's current state.
func (t *Task) Glyph() string {
	if t.completed {
		return GlyphDone
	}
	return GlyphPending
}

func (t *Task) String() string { return t.Glyph() + " " + t.title }
