package repository

import (
	"context"

	"github.com/yukikurage/taskforce/internal/constants"
	"github.com/yukikurage/taskforce/internal/models"
	"github.com/yukikurage/taskforce/internal/store"
)

// StoreExpectedTaskRepository is a store.Client implementation of ExpectedTaskRepository
type StoreExpectedTaskRepository struct {
	client store.Client
}

// NewExpectedTaskRepository creates a new ExpectedTaskRepository
func NewExpectedTaskRepository(client store.Client) ExpectedTaskRepository {
	return &StoreExpectedTaskRepository{client: client}
}

// List returns the backlog, newest first
func (r *StoreExpectedTaskRepository) List(ctx context.Context) ([]models.ExpectedTask, error) {
	tasks := []models.ExpectedTask{}
	if err := r.client.List(ctx, constants.TableExpectedTasks, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create inserts a backlog entry
func (r *StoreExpectedTaskRepository) Create(ctx context.Context, task *models.ExpectedTask) error {
	return r.client.Insert(ctx, constants.TableExpectedTasks, task)
}

// Delete removes a backlog entry by ID
func (r *StoreExpectedTaskRepository) Delete(ctx context.Context, id uint64) error {
	return r.client.Delete(ctx, constants.TableExpectedTasks, id)
}
