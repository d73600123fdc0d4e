package service

import (
	"context"
	"todoList/internal/models/task"

	"github.com/google/uuid"
)

type TaskRepository interface {
	HealthCheck(context.Context) error
	Create(context.Context, task.Task) (task.Task, error)
	GetByID(context.Context, uuid.UUID) (task.Task, error)
	GetAll(context.Context) ([]task.Task, error)
	GetByState(context.Context, bool) ([]task.Task, error)
	Update(context.Context, task.Task) (task.Task, error)
	SetCompleted(context.Context, uuid.UUID, bool) (task.Task, error)
	Delete(context.Context, uuid.UUID) error
	DeleteCompleted(context.Context) (int, error)
	DeleteAll(context.Context) (int, error)
}
