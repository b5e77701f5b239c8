package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/taskforce/internal/repository"
	"github.com/yukikurage/taskforce/internal/services"
	"github.com/yukikurage/taskforce/internal/store/storetest"
)

func newRegistry() *Registry {
	fake := storetest.New()
	return NewRegistry(Deps{
		Members:  services.NewMemberService(repository.NewMemberRepository(fake)),
		Backlog:  services.NewBacklogService(repository.NewExpectedTaskRepository(fake)),
		Tasks:    services.NewTaskService(repository.NewTaskRepository(fake)),
		Assigner: &stubAssigner{},
	})
}

func TestRegistry_GetReturnsSameWorkspace(t *testing.T) {
	r := newRegistry()

	a := r.Get("session-a")
	require.NotNil(t, a)
	assert.Same(t, a, r.Get("session-a"))
	assert.NotSame(t, a, r.Get("session-b"))
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, "session-a", a.ID)
}

func TestRegistry_SweepDropsIdleWorkspaces(t *testing.T) {
	r := newRegistry()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	r.Get("old")
	now = now.Add(20 * time.Minute)
	r.Get("fresh")
	now = now.Add(15 * time.Minute)

	removed := r.Sweep(30 * time.Minute)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, r.Len())
}
