package handlers

import (
	"context"
	"todoList/internal/models/task"

	"github.com/google/uuid"
)

type Service interface {
	HealthCheck(context.Context) error
	List(context.Context) ([]task.Task, error)
	ListByState(context.Context, bool) ([]task.Task, error)
	Get(context.Context, uuid.UUID) (task.Task, bool, error)
	Add(context.Context, task.Task) (task.Task, error)
	Delete(context.Context, uuid.UUID) error
	DeleteCompleted(context.Context) (int, error)
	DeleteAll(context.Context) (int, error)
	Edit(context.Context, task.Task) (task.Task, error)
	Complete(context.Context, uuid.UUID) (task.Task, error)
	Uncomplete(context.Context, uuid.UUID) (task.Task, error)
}
