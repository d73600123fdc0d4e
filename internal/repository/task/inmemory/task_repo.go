package inmemory

import (
	"context"
	"sync"
	"todoList/internal/logger"
	"todoList/internal/models/task"
	repo "todoList/internal/repository"

	"github.com/google/uuid"
)

// TaskStorage хранит задачи в памяти процесса.
// Все изменения идут под одной блокировкой, чтение под RLock,
// наружу отдаются только копии.
type TaskStorage struct {
	storage map[uuid.UUID]*task.Task
	mtx     *sync.RWMutex
	ids     []uuid.UUID
}

func NewTaskStorage() *TaskStorage {
	return &TaskStorage{
		storage: make(map[uuid.UUID]*task.Task),
		mtx:     &sync.RWMutex{},
		ids:     []uuid.UUID{},
	}
}

func (s *TaskStorage) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logger.Debug("Repository: Хранилище доступно")
	return nil
}

func (s *TaskStorage) Create(ctx context.Context, taskToCreate task.Task) (task.Task, error) {
	if err := ctx.Err(); err != nil {
		return task.Task{}, err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := ctx.Err(); err != nil {
		return task.Task{}, err
	}

	if _, ok := s.storage[taskToCreate.ID]; ok {
		return task.Task{}, repo.ErrAlreadyExists
	}

	stored := taskToCreate
	s.storage[stored.ID] = &stored
	s.ids = append(s.ids, stored.ID)
	return stored, nil
}

func (s *TaskStorage) GetByID(ctx context.Context, id uuid.UUID) (task.Task, error) {
	if err := ctx.Err(); err != nil {
		return task.Task{}, err
	}

	s.mtx.RLock()
	defer s.mtx.RUnlock()

	taskToGet, ok := s.storage[id]
	if !ok {
		return task.Task{}, repo.ErrNotFound
	}
	return *taskToGet, nil
}

// получение всех задач в порядке добавления
func (s *TaskStorage) GetAll(ctx context.Context) ([]task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := make([]task.Task, 0, len(s.ids))
	for _, id := range s.ids {
		res = append(res, *s.storage[id])
	}
	return res, nil
}

// получение задач с определённым состоянием
func (s *TaskStorage) GetByState(ctx context.Context, completed bool) ([]task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []task.Task{}
	for _, id := range s.ids {
		taskToGet := s.storage[id]
		if taskToGet.IsCompleted != completed {
			continue
		}
		res = append(res, *taskToGet)
	}
	return res, nil
}

// замена записи на месте, позиция в списке сохраняется
func (s *TaskStorage) Update(ctx context.Context, taskToUpdate task.Task) (task.Task, error) {
	if err := ctx.Err(); err != nil {
		return task.Task{}, err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := ctx.Err(); err != nil {
		return task.Task{}, err
	}

	existed, ok := s.storage[taskToUpdate.ID]
	if !ok {
		return task.Task{}, repo.ErrNotFound
	}

	*existed = taskToUpdate
	return *existed, nil
}

// SetCompleted переключает флаг завершения. Переход в то же состояние отклоняется.
func (s *TaskStorage) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) (task.Task, error) {
	if err := ctx.Err(); err != nil {
		return task.Task{}, err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := ctx.Err(); err != nil {
		return task.Task{}, err
	}

	existed, ok := s.storage[id]
	if !ok {
		return task.Task{}, repo.ErrNotFound
	}
	if existed.IsCompleted == completed {
		return task.Task{}, repo.ErrNoStateChange
	}

	existed.IsCompleted = completed
	return *existed, nil
}

func (s *TaskStorage) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	if _, ok := s.storage[id]; !ok {
		return repo.ErrNotFound
	}

	delete(s.storage, id)
	for ind, val := range s.ids {
		if val == id {
			s.ids = append(s.ids[:ind], s.ids[ind+1:]...)
			break
		}
	}
	return nil
}

// удаление всех завершённых задач, возвращает количество удалённых
func (s *TaskStorage) DeleteCompleted(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	kept := make([]uuid.UUID, 0, len(s.ids))
	removed := 0
	for _, id := range s.ids {
		if s.storage[id].IsCompleted {
			delete(s.storage, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	s.ids = kept
	return removed, nil
}

func (s *TaskStorage) DeleteAll(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	removed := len(s.ids)
	s.storage = make(map[uuid.UUID]*task.Task)
	s.ids = []uuid.UUID{}
	return removed, nil
}
