package models

import (
	"time"

	"github.com/yukikurage/taskforce/internal/constants"
)

// Conventional task statuses written by the assignment workflow. The column
// is free text; other values are displayed as-is.
const (
	TaskStatusTodo       = "To Do"
	TaskStatusInProgress = "In Progress"
	TaskStatusDone       = "Done"
)

// Task is an assigned task. Rows are written by the external workflow only;
// assignee and email are copies, not references to members.
type Task struct {
	ID        uint64     `gorm:"primarykey" json:"id"`
	TaskID    *string    `json:"task_id"`
	TaskName  *string    `json:"task_name"`
	Assignee  *string    `json:"assignee"`
	Email     *string    `json:"email"`
	Status    *string    `gorm:"type:varchar(50)" json:"status"`
	Deadline  *Timestamp `json:"deadline"`
	Reasoning *string    `gorm:"type:text" json:"reasoning"`
	Reminder  *string    `json:"reminder"`
	Start     *Timestamp `gorm:"column:start" json:"start"`
	End       *Timestamp `gorm:"column:end" json:"end"`
	TimeH     *string    `gorm:"column:time_h" json:"time_h"`
	CreatedAt time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (Task) TableName() string {
	return constants.TableTasks
}
