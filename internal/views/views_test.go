package views

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/yukikurage/taskforce/internal/constants"
	"github.com/yukikurage/taskforce/internal/logging"
	"github.com/yukikurage/taskforce/internal/models"
	"github.com/yukikurage/taskforce/internal/repository"
	"github.com/yukikurage/taskforce/internal/services"
	"github.com/yukikurage/taskforce/internal/store/storetest"
	"github.com/yukikurage/taskforce/internal/trigger"
)

// stubAssigner answers TriggerAssignment with a fixed result, optionally
// blocking until release is closed.
type stubAssigner struct {
	mu      sync.Mutex
	calls   int
	err     error
	release chan struct{}
	started chan struct{}
}

func (a *stubAssigner) TriggerAssignment(ctx context.Context) (*trigger.Result, error) {
	a.mu.Lock()
	a.calls++
	release, started := a.release, a.started
	a.mu.Unlock()

	if started != nil {
		close(started)
	}
	if release != nil {
		<-release
	}
	if a.err != nil {
		return nil, a.err
	}
	return &trigger.Result{StatusCode: 200, Data: json.RawMessage(`{"assigned":3}`)}, nil
}

func (a *stubAssigner) Calls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls
}

// manualTimer records scheduled callbacks so tests can fire them.
type manualTimer struct {
	mu     sync.Mutex
	delays []time.Duration
	funcs  []func()
}

func (m *manualTimer) AfterFunc(d time.Duration, f func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delays = append(m.delays, d)
	m.funcs = append(m.funcs, f)
}

func (m *manualTimer) Fire() {
	m.mu.Lock()
	funcs := m.funcs
	m.funcs = nil
	m.mu.Unlock()
	for _, f := range funcs {
		f()
	}
}

func newMemberView() (*MemberView, *storetest.Fake) {
	fake := storetest.New()
	svc := services.NewMemberService(repository.NewMemberRepository(fake))
	return NewMemberView(svc, logging.Discard()), fake
}

func newBacklogView(assigner trigger.Assigner, timer *manualTimer) (*BacklogView, *storetest.Fake) {
	fake := storetest.New()
	svc := services.NewBacklogService(repository.NewExpectedTaskRepository(fake))
	return NewBacklogView(svc, assigner, logging.Discard(), WithAfterFunc(timer.AfterFunc)), fake
}

func seedBacklog(fake *storetest.Fake, descriptions ...string) {
	for _, d := range descriptions {
		fake.Seed(constants.TableExpectedTasks, &models.ExpectedTask{Description: d})
	}
}
