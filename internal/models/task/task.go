package task

import (
	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	IsCompleted bool      `json:"is_completed" yaml:"completed"`
}

type State string

const StateActive State = "active"
const StateCompleted State = "completed"

// New собирает задачу с новым uuid, незавершённую по умолчанию
func New(title string, options ...TaskOption) Task {
	t := Task{
		ID:    uuid.New(),
		Title: title,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&t)
		}
	}
	return t
}

func (t Task) State() State {
	if t.IsCompleted {
		return StateCompleted
	}
	return StateActive
}
