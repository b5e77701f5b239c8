package services

import (
	"context"

	"github.com/yukikurage/taskforce/internal/models"
	"github.com/yukikurage/taskforce/internal/repository"
)

// TaskService exposes the assigned tasks written by the assignment workflow.
// It is read-only.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// List returns every assigned task, newest first
func (s *TaskService) List(ctx context.Context) ([]models.Task, error) {
	return s.taskRepo.List(ctx)
}
