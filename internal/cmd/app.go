package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/yukikurage/taskforce/internal/config"
	"github.com/yukikurage/taskforce/internal/logging"
	"github.com/yukikurage/taskforce/internal/repository"
	"github.com/yukikurage/taskforce/internal/services"
	"github.com/yukikurage/taskforce/internal/store"
)

// app is the wiring shared by every command that talks to the data store.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	client  store.Client
	closeFn func() error

	members *services.MemberService
	backlog *services.BacklogService
	tasks   *services.TaskService
}

func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg := config.Load()
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, logging.New(os.Stderr, cfg.LogLevel), nil
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	client, closeFn, err := store.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open data store: %w", err)
	}

	return &app{
		cfg:     cfg,
		logger:  logger,
		client:  client,
		closeFn: closeFn,
		members: services.NewMemberService(repository.NewMemberRepository(client)),
		backlog: services.NewBacklogService(repository.NewExpectedTaskRepository(client)),
		tasks:   services.NewTaskService(repository.NewTaskRepository(client)),
	}, nil
}

func (a *app) Close() {
	if err := a.closeFn(); err != nil {
		a.logger.Warn("failed to close data store", "error", err)
	}
}
