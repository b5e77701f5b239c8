package views

import (
	"context"
	"log/slog"
	"sync"

	"github.com/yukikurage/taskforce/internal/models"
	"github.com/yukikurage/taskforce/internal/services"
)

// MemberService is what the roster needs from the data layer.
type MemberService interface {
	List(ctx context.Context) ([]models.Member, error)
	Add(ctx context.Context, input services.AddMemberInput) (*models.Member, error)
	Remove(ctx context.Context, id uint64) error
}

// MemberView is the team roster.
type MemberView struct {
	mu      sync.Mutex
	svc     MemberService
	logger  *slog.Logger
	members []models.Member
	draft   services.AddMemberInput
	fetch   op
	add     op
	remove  op
}

func NewMemberView(svc MemberService, logger *slog.Logger) *MemberView {
	if logger == nil {
		logger = slog.Default()
	}
	return &MemberView{
		svc:    svc,
		logger: logger,
		draft:  blankMemberDraft(),
	}
}

func blankMemberDraft() services.AddMemberInput {
	return services.AddMemberInput{Status: models.MemberStatusActive}
}

// Refresh re-fetches the roster. On failure the error is logged and the
// previous list is kept.
func (v *MemberView) Refresh(ctx context.Context) error {
	v.mu.Lock()
	v.fetch.start()
	v.mu.Unlock()

	members, err := v.svc.List(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.fetch.finish(err)
	if err != nil {
		v.logger.Error("failed to fetch members", "error", err)
		return err
	}
	v.members = members
	return nil
}

// AddMember inserts input. On success the list is refreshed and the draft
// cleared; on failure the draft keeps input and the store's error is
// returned for the user.
func (v *MemberView) AddMember(ctx context.Context, input services.AddMemberInput) error {
	v.mu.Lock()
	if !v.add.startExclusive() {
		v.mu.Unlock()
		return ErrAddInFlight
	}
	v.draft = input
	v.mu.Unlock()

	_, err := v.svc.Add(ctx, input)

	v.mu.Lock()
	v.add.finish(err)
	if err == nil {
		v.draft = blankMemberDraft()
	}
	v.mu.Unlock()

	if err != nil {
		return err
	}
	_ = v.Refresh(ctx)
	return nil
}

// RemoveMember deletes a member once the user has confirmed it, then
// refreshes the list.
func (v *MemberView) RemoveMember(ctx context.Context, id uint64, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}

	v.mu.Lock()
	v.remove.start()
	v.mu.Unlock()

	err := v.svc.Remove(ctx, id)

	v.mu.Lock()
	v.remove.finish(err)
	v.mu.Unlock()

	if err != nil {
		return err
	}
	_ = v.Refresh(ctx)
	return nil
}

// Members returns a copy of the last fetched roster.
func (v *MemberView) Members() []models.Member {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.Member(nil), v.members...)
}

// Draft returns the unsaved form values.
func (v *MemberView) Draft() services.AddMemberInput {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.draft
}

func (v *MemberView) FetchState() Op {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.fetch.snapshot()
}

func (v *MemberView) AddState() Op {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.add.snapshot()
}

func (v *MemberView) RemoveState() Op {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.remove.snapshot()
}
