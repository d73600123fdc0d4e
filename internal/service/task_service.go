package service

import (
	"context"
	"errors"
	"fmt"
	"todoList/internal/logger"
	"todoList/internal/models/task"
	rep "todoList/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TaskService - основной набор операций над списком задач.
// Атомарность каждой операции обеспечивает репозиторий, здесь только
// перевод ошибок хранилища в BusinessError и логирование.
type TaskService struct {
	repo TaskRepository
}

func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{
		repo: repo,
	}
}

func (s *TaskService) HealthCheck(ctx context.Context) error {
	if err := s.repo.HealthCheck(ctx); err != nil {
		return fmt.Errorf("проверка здоровья сервиса: %w", err)
	}
	return nil
}

// List возвращает все задачи в порядке добавления
func (s *TaskService) List(ctx context.Context) ([]task.Task, error) {
	tasks, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, translate("list", uuid.Nil, "", err)
	}
	return tasks, nil
}

// ListByState возвращает только завершённые или только активные задачи
func (s *TaskService) ListByState(ctx context.Context, completed bool) ([]task.Task, error) {
	tasks, err := s.repo.GetByState(ctx, completed)
	if err != nil {
		return nil, translate("list", uuid.Nil, "", err)
	}
	return tasks, nil
}

// Get возвращает задачу и false, если её нет. Отсутствие задачи ошибкой не считается.
func (s *TaskService) Get(ctx context.Context, id uuid.UUID) (task.Task, bool, error) {
	found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			logger.Debug("Service: Задача не найдена", zap.String("target_id", id.String()))
			return task.Task{}, false, nil
		}
		return task.Task{}, false, translate("get", id, "", err)
	}
	return found, true, nil
}

func (s *TaskService) Add(ctx context.Context, taskToAdd task.Task) (task.Task, error) {
	created, err := s.repo.Create(ctx, taskToAdd)
	if err != nil {
		logger.Info("Service: Задача не добавлена",
			zap.String("target_id", taskToAdd.ID.String()),
			zap.Error(err))
		return task.Task{}, translate("add", taskToAdd.ID, "", err)
	}

	logger.Debug("Service: Задача добавлена", zap.String("target_id", created.ID.String()))
	return created, nil
}

func (s *TaskService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		logger.Info("Service: Задача не удалена",
			zap.String("target_id", id.String()),
			zap.Error(err))
		return translate("delete", id, "", err)
	}

	logger.Debug("Service: Задача удалена", zap.String("target_id", id.String()))
	return nil
}

// DeleteCompleted удаляет все завершённые задачи и возвращает их количество
func (s *TaskService) DeleteCompleted(ctx context.Context) (int, error) {
	removed, err := s.repo.DeleteCompleted(ctx)
	if err != nil {
		return 0, translate("delete_completed", uuid.Nil, "", err)
	}

	logger.Debug("Service: Завершённые задачи удалены", zap.Int("removed", removed))
	return removed, nil
}

func (s *TaskService) DeleteAll(ctx context.Context) (int, error) {
	removed, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, translate("delete_all", uuid.Nil, "", err)
	}

	logger.Debug("Service: Все задачи удалены", zap.Int("removed", removed))
	return removed, nil
}

// Edit заменяет задачу с тем же id. Создать задачу через Edit нельзя.
func (s *TaskService) Edit(ctx context.Context, taskToEdit task.Task) (task.Task, error) {
	updated, err := s.repo.Update(ctx, taskToEdit)
	if err != nil {
		logger.Info("Service: Задача не обновлена",
			zap.String("target_id", taskToEdit.ID.String()),
			zap.Error(err))
		return task.Task{}, translate("edit", taskToEdit.ID, "", err)
	}

	logger.Debug("Service: Задача обновлена", zap.String("target_id", updated.ID.String()))
	return updated, nil
}

func (s *TaskService) Complete(ctx context.Context, id uuid.UUID) (task.Task, error) {
	return s.toggle(ctx, id, true)
}

func (s *TaskService) Uncomplete(ctx context.Context, id uuid.UUID) (task.Task, error) {
	return s.toggle(ctx, id, false)
}

func (s *TaskService) toggle(ctx context.Context, id uuid.UUID, completed bool) (task.Task, error) {
	target := task.StateActive
	operation := "uncomplete"
	if completed {
		target = task.StateCompleted
		operation = "complete"
	}

	updated, err := s.repo.SetCompleted(ctx, id, completed)
	if err != nil {
		logger.Info("Service: Состояние задачи не изменено",
			zap.String("target_id", id.String()),
			zap.String("target_state", string(target)),
			zap.Error(err))
		return task.Task{}, translate(operation, id, target, err)
	}

	logger.Debug("Service: Состояние задачи изменено",
		zap.String("target_id", id.String()),
		zap.String("state", string(target)))
	return updated, nil
}
