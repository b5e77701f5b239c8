package repository

import (
	"context"

	"github.com/yukikurage/taskforce/internal/constants"
	"github.com/yukikurage/taskforce/internal/models"
	"github.com/yukikurage/taskforce/internal/store"
)

// StoreTaskRepository is a store.Client implementation of TaskRepository
type StoreTaskRepository struct {
	client store.Client
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(client store.Client) TaskRepository {
	return &StoreTaskRepository{client: client}
}

// List returns all assigned tasks, newest first
func (r *StoreTaskRepository) List(ctx context.Context) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := r.client.List(ctx, constants.TableTasks, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
