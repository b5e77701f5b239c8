package services

import (
	"context"
	"errors"
	"strings"

	"github.com/yukikurage/taskforce/internal/models"
	"github.com/yukikurage/taskforce/internal/repository"
)

var (
	ErrDescriptionRequired = errors.New("description is required")
	ErrInvalidDeadline     = errors.New("deadline must be a date and time")
)

// BacklogService handles expected tasks awaiting assignment
type BacklogService struct {
	taskRepo repository.ExpectedTaskRepository
}

// NewBacklogService creates a new BacklogService
func NewBacklogService(taskRepo repository.ExpectedTaskRepository) *BacklogService {
	return &BacklogService{taskRepo: taskRepo}
}

// AddTaskInput represents a backlog draft. Deadline is RFC 3339 or an HTML
// datetime-local value; empty deadline and note are stored as NULL.
type AddTaskInput struct {
	Description string `validate:"required"`
	Deadline    string
	Note        string
}

// List returns the backlog, newest first
func (s *BacklogService) List(ctx context.Context) ([]models.ExpectedTask, error) {
	return s.taskRepo.List(ctx)
}

// Add validates and inserts a backlog entry
func (s *BacklogService) Add(ctx context.Context, input AddTaskInput) (*models.ExpectedTask, error) {
	input.Description = strings.TrimSpace(input.Description)
	if err := validate.Struct(input); err != nil {
		return nil, validationError(err, map[string]error{
			"Description": ErrDescriptionRequired,
		})
	}

	task := &models.ExpectedTask{Description: input.Description}

	if deadline := strings.TrimSpace(input.Deadline); deadline != "" {
		ts, err := models.ParseTimestamp(deadline)
		if err != nil {
			return nil, ErrInvalidDeadline
		}
		task.Deadline = &ts
	}
	if note := strings.TrimSpace(input.Note); note != "" {
		task.Note = &note
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// Remove deletes a backlog entry by ID
func (s *BacklogService) Remove(ctx context.Context, id uint64) error {
	if id == 0 {
		return ErrInvalidID
	}
	return s.taskRepo.Delete(ctx, id)
}
