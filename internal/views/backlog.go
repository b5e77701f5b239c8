package views

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/yukikurage/taskforce/internal/constants"
	"github.com/yukikurage/taskforce/internal/models"
	"github.com/yukikurage/taskforce/internal/services"
	"github.com/yukikurage/taskforce/internal/trigger"
)

// BacklogService is what the backlog needs from the data layer.
type BacklogService interface {
	List(ctx context.Context) ([]models.ExpectedTask, error)
	Add(ctx context.Context, input services.AddTaskInput) (*models.ExpectedTask, error)
	Remove(ctx context.Context, id uint64) error
}

// BacklogView is the list of expected tasks plus the button that hands the
// backlog to the assignment workflow.
//
// The selection is kept for the UI only. Triggering always assigns the whole
// backlog; no ids are sent.
type BacklogView struct {
	mu       sync.Mutex
	svc      BacklogService
	assigner trigger.Assigner
	logger   *slog.Logger

	tasks    []models.ExpectedTask
	selected map[uint64]struct{}
	draft    services.AddTaskInput

	fetch   op
	add     op
	remove  op
	trigger op

	refreshDelay   time.Duration
	afterFunc      func(time.Duration, func())
	refreshPending bool
}

type BacklogOption func(*BacklogView)

// WithRefreshDelay sets how long to wait after a successful trigger before
// re-fetching the backlog.
func WithRefreshDelay(d time.Duration) BacklogOption {
	return func(v *BacklogView) {
		v.refreshDelay = d
	}
}

// WithAfterFunc replaces the timer used for the delayed refresh.
func WithAfterFunc(f func(time.Duration, func())) BacklogOption {
	return func(v *BacklogView) {
		v.afterFunc = f
	}
}

func NewBacklogView(svc BacklogService, assigner trigger.Assigner, logger *slog.Logger, opts ...BacklogOption) *BacklogView {
	if logger == nil {
		logger = slog.Default()
	}
	v := &BacklogView{
		svc:          svc,
		assigner:     assigner,
		logger:       logger,
		selected:     make(map[uint64]struct{}),
		refreshDelay: constants.DefaultRefreshDelay,
		afterFunc: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Refresh re-fetches the backlog, keeping the previous list on failure.
func (v *BacklogView) Refresh(ctx context.Context) error {
	v.mu.Lock()
	v.fetch.start()
	v.mu.Unlock()

	tasks, err := v.svc.List(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.fetch.finish(err)
	if err != nil {
		v.logger.Error("failed to fetch backlog", "error", err)
		return err
	}
	v.tasks = tasks
	return nil
}

// AddTask inserts a backlog entry. The draft is cleared and the list
// refreshed on success; on failure the draft is left as input.
func (v *BacklogView) AddTask(ctx context.Context, input services.AddTaskInput) error {
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
		v.draft = services.AddTaskInput{}
	}
	v.mu.Unlock()

	if err != nil {
		return err
	}
	_ = v.Refresh(ctx)
	return nil
}

// RemoveTask deletes a confirmed entry, drops it from the selection and
// refreshes.
func (v *BacklogView) RemoveTask(ctx context.Context, id uint64, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}

	v.mu.Lock()
	v.remove.start()
	v.mu.Unlock()

	err := v.svc.Remove(ctx, id)

	v.mu.Lock()
	v.remove.finish(err)
	if err == nil {
		delete(v.selected, id)
	}
	v.mu.Unlock()

	if err != nil {
		return err
	}
	_ = v.Refresh(ctx)
	return nil
}

// ToggleSelect flips id in the selection.
func (v *BacklogView) ToggleSelect(id uint64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.selected[id]; ok {
		delete(v.selected, id)
		return
	}
	v.selected[id] = struct{}{}
}

// ToggleSelectAll clears the selection when every listed task is selected
// and selects every listed task otherwise.
func (v *BacklogView) ToggleSelectAll() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.everyListedSelectedLocked() {
		v.selected = make(map[uint64]struct{})
		return
	}
	v.selected = make(map[uint64]struct{}, len(v.tasks))
	for _, t := range v.tasks {
		v.selected[t.ID] = struct{}{}
	}
}

func (v *BacklogView) everyListedSelectedLocked() bool {
	for _, t := range v.tasks {
		if _, ok := v.selected[t.ID]; !ok {
			return false
		}
	}
	return true
}

// TriggerAssignment asks the workflow to assign the whole backlog. While a
// call is in flight further calls fail with ErrTriggerInFlight. On success
// the selection is cleared and the backlog re-fetched once the refresh delay
// has passed; on failure nothing else changes.
func (v *BacklogView) TriggerAssignment(ctx context.Context) (*trigger.Result, error) {
	v.mu.Lock()
	if !v.trigger.startExclusive() {
		v.mu.Unlock()
		return nil, ErrTriggerInFlight
	}
	v.mu.Unlock()

	result, err := v.assigner.TriggerAssignment(ctx)

	v.mu.Lock()
	v.trigger.finish(err)
	if err == nil {
		v.refreshPending = true
	}
	v.mu.Unlock()

	if err != nil {
		v.logger.Error("failed to trigger assignment", "error", err)
		return nil, err
	}

	v.afterFunc(v.refreshDelay, v.refreshAfterTrigger)
	return result, nil
}

func (v *BacklogView) refreshAfterTrigger() {
	_ = v.Refresh(context.Background())

	v.mu.Lock()
	defer v.mu.Unlock()
	v.selected = make(map[uint64]struct{})
	v.refreshPending = false
}

// Tasks returns a copy of the last fetched backlog.
func (v *BacklogView) Tasks() []models.ExpectedTask {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.ExpectedTask(nil), v.tasks...)
}

// Selected returns the selected ids in ascending order.
func (v *BacklogView) Selected() []uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	ids := make([]uint64, 0, len(v.selected))
	for id := range v.selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (v *BacklogView) IsSelected(id uint64) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	_, ok := v.selected[id]
	return ok
}

// AllSelected reports whether the backlog is non-empty and fully selected.
func (v *BacklogView) AllSelected() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.tasks) > 0 && v.everyListedSelectedLocked()
}

func (v *BacklogView) Draft() services.AddTaskInput {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.draft
}

// RefreshPending reports whether a post-trigger refresh is scheduled.
func (v *BacklogView) RefreshPending() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.refreshPending
}

// RefreshDelay is the wait between a successful trigger and the re-fetch.
func (v *BacklogView) RefreshDelay() time.Duration {
	return v.refreshDelay
}

func (v *BacklogView) FetchState() Op {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.fetch.snapshot()
}

func (v *BacklogView) AddState() Op {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.add.snapshot()
}

func (v *BacklogView) RemoveState() Op {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.remove.snapshot()
}

func (v *BacklogView) TriggerState() Op {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.trigger.snapshot()
}
