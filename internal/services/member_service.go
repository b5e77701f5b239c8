package services

import (
	"context"
	"errors"
	"strings"

	"github.com/yukikurage/taskforce/internal/models"
	"github.com/yukikurage/taskforce/internal/repository"
)

var (
	ErrFullNameRequired    = errors.New("full name is required")
	ErrEmailRequired       = errors.New("email is required")
	ErrInvalidMemberStatus = errors.New("status must be Active or Inactive")
	ErrInvalidID           = errors.New("invalid id")
)

// MemberService handles the team roster
type MemberService struct {
	memberRepo repository.MemberRepository
}

// NewMemberService creates a new MemberService
func NewMemberService(memberRepo repository.MemberRepository) *MemberService {
	return &MemberService{memberRepo: memberRepo}
}

// AddMemberInput represents input for adding a member
type AddMemberInput struct {
	FullName string `validate:"required"`
	Email    string `validate:"required"`
	Skills   string
	Status   models.MemberStatus `validate:"omitempty,oneof=Active Inactive"`
}

// List returns every member, newest first
func (s *MemberService) List(ctx context.Context) ([]models.Member, error) {
	return s.memberRepo.List(ctx)
}

// Add validates and inserts a member. Store errors are returned unchanged so
// their message reaches the user verbatim.
func (s *MemberService) Add(ctx context.Context, input AddMemberInput) (*models.Member, error) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = strings.TrimSpace(input.Email)
	input.Skills = strings.TrimSpace(input.Skills)

	if err := validate.Struct(input); err != nil {
		return nil, validationError(err, map[string]error{
			"FullName": ErrFullNameRequired,
			"Email":    ErrEmailRequired,
			"Status":   ErrInvalidMemberStatus,
		})
	}

	if input.Status == "" {
		input.Status = models.MemberStatusActive
	}

	member := &models.Member{
		FullName: input.FullName,
		Email:    input.Email,
		Skills:   input.Skills,
		Status:   input.Status,
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

// Remove deletes a member by ID
func (s *MemberService) Remove(ctx context.Context, id uint64) error {
	if id == 0 {
		return ErrInvalidID
	}
	return s.memberRepo.Delete(ctx, id)
}
