package dto

import (
	"time"

	"github.com/yukikurage/taskforce/internal/models"
)

// TaskDTO represents an assigned task in API responses
type TaskDTO struct {
	ID        uint64     `json:"id"`
	TaskID    *string    `json:"task_id"`
	TaskName  *string    `json:"task_name"`
	Assignee  *string    `json:"assignee"`
	Email     *string    `json:"email"`
	Status    *string    `json:"status"`
	Deadline  *time.Time `json:"deadline"`
	Reasoning *string    `json:"reasoning"`
	Reminder  *string    `json:"reminder"`
	Start     *time.Time `json:"start"`
	End       *time.Time `json:"end"`
	TimeH     *string    `json:"time_h"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:        task.ID,
		TaskID:    task.TaskID,
		TaskName:  task.TaskName,
		Assignee:  task.Assignee,
		Email:     task.Email,
		Status:    task.Status,
		Deadline:  timestampPtr(task.Deadline),
		Reasoning: task.Reasoning,
		Reminder:  task.Reminder,
		Start:     timestampPtr(task.Start),
		End:       timestampPtr(task.End),
		TimeH:     task.TimeH,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}

// ToTaskDTOs converts a slice of tasks, never returning nil
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, t := range tasks {
		items[i] = ToTaskDTO(t)
	}
	return items
}
