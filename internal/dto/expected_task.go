package dto

import (
	"time"

	"github.com/yukikurage/taskforce/internal/models"
	"github.com/yukikurage/taskforce/internal/services"
)

// CreateExpectedTaskRequest is the add-task form and JSON body
type CreateExpectedTaskRequest struct {
	Description string `json:"description" form:"description"`
	Deadline    string `json:"deadline" form:"deadline"`
	Note        string `json:"note" form:"note"`
}

// ToInput converts the request to service input
func (r CreateExpectedTaskRequest) ToInput() services.AddTaskInput {
	return services.AddTaskInput{
		Description: r.Description,
		Deadline:    r.Deadline,
		Note:        r.Note,
	}
}

// ExpectedTaskDTO represents a backlog entry in API responses
type ExpectedTaskDTO struct {
	ID          uint64     `json:"id"`
	Description string     `json:"description"`
	Deadline    *time.Time `json:"deadline"`
	Note        *string    `json:"note"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ToExpectedTaskDTO converts an ExpectedTask model to ExpectedTaskDTO
func ToExpectedTaskDTO(task models.ExpectedTask) ExpectedTaskDTO {
	return ExpectedTaskDTO{
		ID:          task.ID,
		Description: task.Description,
		Deadline:    timestampPtr(task.Deadline),
		Note:        task.Note,
		CreatedAt:   task.CreatedAt,
	}
}

// ToExpectedTaskDTOs converts a slice of backlog entries, never returning nil
func ToExpectedTaskDTOs(tasks []models.ExpectedTask) []ExpectedTaskDTO {
	items := make([]ExpectedTaskDTO, len(tasks))
	for i, t := range tasks {
		items[i] = ToExpectedTaskDTO(t)
	}
	return items
}

func timestampPtr(ts *models.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.Time
	return &t
}
