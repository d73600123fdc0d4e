package task

import (
	"github.com/google/uuid"
)

type TaskOption func(*Task)

func WithID(id uuid.UUID) TaskOption {
	if id == uuid.Nil {
		return nil
	}
	return func(task *Task) {
		task.ID = id
	}
}

func WithTitle(title string) TaskOption {
	return func(task *Task) {
		task.Title = title
	}
}

func WithCompleted(completed bool) TaskOption {
	return func(task *Task) {
		task.IsCompleted = completed
	}
}
