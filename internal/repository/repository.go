package repository

import (
	"context"

	"github.com/yukikurage/taskforce/internal/models"
)

// MemberRepository defines data access for the members table
type MemberRepository interface {
	// List returns all members, newest first
	List(ctx context.Context) ([]models.Member, error)

	// Create inserts a member and fills in its store-assigned columns
	Create(ctx context.Context, member *models.Member) error

	// Delete removes a member by ID
	Delete(ctx context.Context, id uint64) error
}

// ExpectedTaskRepository defines data access for the expected_tasks backlog
type ExpectedTaskRepository interface {
	// List returns the backlog, newest first
	List(ctx context.Context) ([]models.ExpectedTask, error)

	// Create inserts a backlog entry
	Create(ctx context.Context, task *models.ExpectedTask) error

	// Delete removes a backlog entry by ID
	Delete(ctx context.Context, id uint64) error
}

// TaskRepository defines read access for assigned tasks
type TaskRepository interface {
	// List returns all assigned tasks, newest first
	List(ctx context.Context) ([]models.Task, error)
}
