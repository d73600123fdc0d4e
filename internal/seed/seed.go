// Package seed загружает начальный набор задач из yaml файла.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"todoList/internal/logger"
	"todoList/internal/models/task"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Adder interface {
	Add(context.Context, task.Task) (task.Task, error)
}

type entry struct {
	ID        string `yaml:"id"`
	Title     string `yaml:"title"`
	Completed bool   `yaml:"completed"`
}

// Decode читает список задач. Пустой id заменяется новым uuid.
func Decode(r io.Reader) ([]task.Task, error) {
	var entries []entry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return []task.Task{}, nil
		}
		return nil, fmt.Errorf("разбор yaml: %w", err)
	}

	tasks := make([]task.Task, 0, len(entries))
	for i, e := range entries {
		opts := []task.TaskOption{task.WithCompleted(e.Completed)}
		if e.ID != "" {
			id, err := uuid.Parse(e.ID)
			if err != nil {
				return nil, fmt.Errorf("задача #%d: неверный id %q: %w", i, e.ID, err)
			}
			opts = append(opts, task.WithID(id))
		}
		tasks = append(tasks, task.New(e.Title, opts...))
	}
	return tasks, nil
}

// Load добавляет задачи из файла и возвращает их количество.
// Первая ошибка добавления прерывает загрузку.
func Load(ctx context.Context, path string, adder Adder) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("не могу открыть %s: %w", path, err)
	}
	defer file.Close()

	tasks, err := Decode(file)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	for i, t := range tasks {
		if _, err := adder.Add(ctx, t); err != nil {
			return i, fmt.Errorf("добавление задачи %s: %w", t.ID, err)
		}
	}

	logger.Info("Seed: Задачи загружены", zap.String("file", path), zap.Int("count", len(tasks)))
	return len(tasks), nil
}
