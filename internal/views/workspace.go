package views

import (
	"log/slog"
	"sync"
	"time"

	"github.com/yukikurage/taskforce/internal/trigger"
)

// Deps are shared by every workspace.
type Deps struct {
	Members      MemberService
	Backlog      BacklogService
	Tasks        TaskLister
	Assigner     trigger.Assigner
	Logger       *slog.Logger
	RefreshDelay time.Duration
}

// Workspace is one browser session's set of views.
type Workspace struct {
	ID      string
	Members *MemberView
	Backlog *BacklogView
	Status  *StatusView
}

func NewWorkspace(id string, deps Deps) *Workspace {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("workspace", id)

	var opts []BacklogOption
	if deps.RefreshDelay > 0 {
		opts = append(opts, WithRefreshDelay(deps.RefreshDelay))
	}

	return &Workspace{
		ID:      id,
		Members: NewMemberView(deps.Members, logger),
		Backlog: NewBacklogView(deps.Backlog, deps.Assigner, logger, opts...),
		Status:  NewStatusView(deps.Tasks, logger),
	}
}

type registryEntry struct {
	workspace *Workspace
	lastSeen  time.Time
}

// Registry keeps a workspace per session id. Idle workspaces are dropped by
// Sweep.
type Registry struct {
	mu         sync.Mutex
	deps       Deps
	workspaces map[string]*registryEntry
	now        func() time.Time
}

func NewRegistry(deps Deps) *Registry {
	return &Registry{
		deps:       deps,
		workspaces: make(map[string]*registryEntry),
		now:        time.Now,
	}
}

// Get returns the workspace for id, creating it on first use.
func (r *Registry) Get(id string) *Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.workspaces[id]
	if !ok {
		entry = &registryEntry{workspace: NewWorkspace(id, r.deps)}
		r.workspaces[id] = entry
	}
	entry.lastSeen = r.now()
	return entry.workspace
}

// Sweep drops workspaces not used within maxIdle and reports how many went.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-maxIdle)
	removed := 0
	for id, entry := range r.workspaces {
		if entry.lastSeen.Before(cutoff) {
			delete(r.workspaces, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of live workspaces.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.workspaces)
}
