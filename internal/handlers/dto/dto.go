package dto

import (
	"todoList/internal/models/task"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	ID          string `json:"id,omitempty" validate:"omitempty,uuid"`
	Title       string `json:"title" validate:"required"`
	IsCompleted bool   `json:"is_completed"`
}

// UpdateTaskRequest описывает запись целиком: PUT заменяет задачу
type UpdateTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	IsCompleted bool   `json:"is_completed"`
}

type TaskResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	IsCompleted bool      `json:"is_completed"`
	State       string    `json:"state"`
}

type DeleteResponse struct {
	Deleted int `json:"deleted"`
}

func (r CreateTaskRequest) ToTask() task.Task {
	var opts []task.TaskOption
	if r.ID != "" {
		opts = append(opts, task.WithID(uuid.MustParse(r.ID)))
	}
	opts = append(opts, task.WithCompleted(r.IsCompleted))
	return task.New(r.Title, opts...)
}

func (r UpdateTaskRequest) ToTask(id uuid.UUID) task.Task {
	return task.Task{
		ID:          id,
		Title:       r.Title,
		IsCompleted: r.IsCompleted,
	}
}

func FromTask(t task.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		IsCompleted: t.IsCompleted,
		State:       string(t.State()),
	}
}

func FromTaskList(tasks []task.Task) []TaskResponse {
	result := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		result[i] = FromTask(t)
	}
	return result
}
