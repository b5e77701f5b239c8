package repository

import (
	"context"

	"github.com/yukikurage/taskforce/internal/constants"
	"github.com/yukikurage/taskforce/internal/models"
	"github.com/yukikurage/taskforce/internal/store"
)

// StoreMemberRepository is a store.Client implementation of MemberRepository
type StoreMemberRepository struct {
	client store.Client
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(client store.Client) MemberRepository {
	return &StoreMemberRepository{client: client}
}

// List returns all members, newest first
func (r *StoreMemberRepository) List(ctx context.Context) ([]models.Member, error) {
	members := []models.Member{}
	if err := r.client.List(ctx, constants.TableMembers, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// Create inserts a member
func (r *StoreMemberRepository) Create(ctx context.Context, member *models.Member) error {
	return r.client.Insert(ctx, constants.TableMembers, member)
}

// Delete removes a member by ID
func (r *StoreMemberRepository) Delete(ctx context.Context, id uint64) error {
	return r.client.Delete(ctx, constants.TableMembers, id)
}
