package dto

import (
	"time"

	"github.com/yukikurage/taskforce/internal/models"
	"github.com/yukikurage/taskforce/internal/services"
)

// CreateMemberRequest is the add-member form and JSON body. Field rules are
// checked by services.MemberService so a rejected form keeps its draft.
type CreateMemberRequest struct {
	FullName string `json:"full_name" form:"full_name"`
	Email    string `json:"email" form:"email"`
	Skills   string `json:"skills" form:"skills"`
	Status   string `json:"status" form:"status"`
}

// ToInput converts the request to service input
func (r CreateMemberRequest) ToInput() services.AddMemberInput {
	return services.AddMemberInput{
		FullName: r.FullName,
		Email:    r.Email,
		Skills:   r.Skills,
		Status:   models.MemberStatus(r.Status),
	}
}

// MemberDTO represents a member in API responses
type MemberDTO struct {
	ID        uint64              `json:"id"`
	FullName  string              `json:"full_name"`
	Email     string              `json:"email"`
	Skills    string              `json:"skills"`
	Status    models.MemberStatus `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
}

// ToMemberDTO converts a Member model to MemberDTO
func ToMemberDTO(member models.Member) MemberDTO {
	return MemberDTO{
		ID:        member.ID,
		FullName:  member.FullName,
		Email:     member.Email,
		Skills:    member.Skills,
		Status:    member.Status,
		CreatedAt: member.CreatedAt,
	}
}

// ToMemberDTOs converts a slice of members, never returning nil
func ToMemberDTOs(members []models.Member) []MemberDTO {
	items := make([]MemberDTO, len(members))
	for i, m := range members {
		items[i] = ToMemberDTO(m)
	}
	return items
}
