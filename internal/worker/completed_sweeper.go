package worker

import (
	"context"
	"time"
	"todoList/internal/logger"

	"go.uber.org/zap"
)

const defaultInterval = 5 * time.Minute

// CompletedRemover - то, что умеет удалять завершённые задачи
type CompletedRemover interface {
	DeleteCompleted(ctx context.Context) (int, error)
}

// CompletedSweeper периодически удаляет завершённые задачи
type CompletedSweeper struct {
	remover  CompletedRemover
	interval time.Duration
}

func NewCompletedSweeper(remover CompletedRemover, interval time.Duration) *CompletedSweeper {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &CompletedSweeper{
		remover:  remover,
		interval: interval,
	}
}

func (w *CompletedSweeper) Interval() time.Duration {
	return w.interval
}

// Start блокируется до отмены ctx
func (w *CompletedSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logger.Info("Worker: Очистка завершённых задач запущена", zap.Duration("interval", w.interval))

	for {
		select {
		case <-ticker.C:
			w.Sweep(ctx)
		case <-ctx.Done():
			logger.Info("Worker: Очистка завершённых задач останавливается")
			return
		}
	}
}

// Sweep выполняет один проход и возвращает число удалённых задач
func (w *CompletedSweeper) Sweep(ctx context.Context) int {
	start := time.Now()

	removed, err := w.remover.DeleteCompleted(ctx)
	if err != nil {
		logger.Warn("Worker: Ошибка очистки завершённых задач", zap.Error(err))
		return 0
	}

	logger.Info(
		"Worker: Завершение очистки",
		zap.Duration("ms", time.Since(start)),
		zap.Int("removed", removed),
	)
	return removed
}
