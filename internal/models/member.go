package models

import (
	"time"

	"github.com/yukikurage/taskforce/internal/constants"
)

type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "Active"
	MemberStatusInactive MemberStatus = "Inactive"
)

// Valid reports whether s is one of the known statuses.
func (s MemberStatus) Valid() bool {
	return s == MemberStatusActive || s == MemberStatusInactive
}

type Member struct {
	ID        uint64       `gorm:"primarykey" json:"id"`
	FullName  string       `gorm:"not null" json:"full_name"`
	Email     string       `gorm:"not null" json:"email"`
	Skills    string       `gorm:"type:text" json:"skills"`
	Status    MemberStatus `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	CreatedAt time.Time    `gorm:"index" json:"created_at"`
}

func (Member) TableName() string {
	return constants.TableMembers
}
