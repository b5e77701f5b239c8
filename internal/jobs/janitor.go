// Package jobs runs background maintenance on a cron schedule.
package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Sweeper drops entries idle for longer than maxIdle and reports how many.
type Sweeper interface {
	Sweep(maxIdle time.Duration) int
}

// WorkspaceJanitor periodically evicts dashboard workspaces that no session
// has touched within the idle TTL.
type WorkspaceJanitor struct {
	cronScheduler *cron.Cron
	sweeper       Sweeper
	idleTTL       time.Duration
	schedule      string
	logger        *slog.Logger
	jobID         cron.EntryID
}

func NewWorkspaceJanitor(sweeper Sweeper, schedule string, idleTTL time.Duration, logger *slog.Logger) *WorkspaceJanitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkspaceJanitor{
		cronScheduler: cron.New(),
		sweeper:       sweeper,
		idleTTL:       idleTTL,
		schedule:      schedule,
		logger:        logger,
	}
}

// Start schedules the sweep and starts the scheduler.
func (j *WorkspaceJanitor) Start() error {
	var err error
	j.jobID, err = j.cronScheduler.AddFunc(j.schedule, func() {
		j.RunOnce()
	})
	if err != nil {
		return fmt.Errorf("error scheduling workspace sweep: %w", err)
	}

	j.cronScheduler.Start()
	j.logger.Info("workspace janitor started", "schedule", j.schedule, "idle_ttl", j.idleTTL)
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (j *WorkspaceJanitor) Stop() {
	if j.cronScheduler == nil {
		return
	}
	<-j.cronScheduler.Stop().Done()
	j.logger.Info("workspace janitor stopped")
}

// RunOnce sweeps immediately and returns the number of evicted workspaces.
func (j *WorkspaceJanitor) RunOnce() int {
	removed := j.sweeper.Sweep(j.idleTTL)
	if removed > 0 {
		j.logger.Info("evicted idle workspaces", "count", removed)
	}
	return removed
}
