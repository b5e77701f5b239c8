package views

import (
	"context"
	"log/slog"
	"sync"

	"github.com/yukikurage/taskforce/internal/models"
)

// TaskLister is the read-only source of assigned tasks.
type TaskLister interface {
	List(ctx context.Context) ([]models.Task, error)
}

// StatusView is the read-only board of assigned tasks. It refreshes only
// when asked.
type StatusView struct {
	mu     sync.Mutex
	svc    TaskLister
	logger *slog.Logger
	tasks  []models.Task
	fetch  op
}

func NewStatusView(svc TaskLister, logger *slog.Logger) *StatusView {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatusView{svc: svc, logger: logger}
}

// Refresh re-fetches the board, keeping the previous rows on failure.
func (v *StatusView) Refresh(ctx context.Context) error {
	v.mu.Lock()
	v.fetch.start()
	v.mu.Unlock()

	tasks, err := v.svc.List(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.fetch.finish(err)
	if err != nil {
		v.logger.Error("failed to fetch tasks", "error", err)
		return err
	}
	v.tasks = tasks
	return nil
}

func (v *StatusView) Tasks() []models.Task {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.Task(nil), v.tasks...)
}

func (v *StatusView) FetchState() Op {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.fetch.snapshot()
}
