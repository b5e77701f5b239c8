package models

import (
	"time"

	"github.com/yukikurage/taskforce/internal/constants"
)

// ExpectedTask is a backlog entry waiting for the assignment workflow.
type ExpectedTask struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Deadline    *Timestamp `json:"deadline"`
	Note        *string    `gorm:"type:text" json:"note"`
	CreatedAt   time.Time  `gorm:"index" json:"created_at"`
}

func (ExpectedTask) TableName() string {
	return constants.TableExpectedTasks
}
