package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/yukikurage/taskforce/internal/constants"
	"github.com/yukikurage/taskforce/internal/jobs"
	"github.com/yukikurage/taskforce/internal/middleware"
	"github.com/yukikurage/taskforce/internal/server"
	"github.com/yukikurage/taskforce/internal/trigger"
	"github.com/yukikurage/taskforce/internal/views"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard, JSON API and trigger proxy",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	gin.SetMode(a.cfg.GinMode)
	logger := a.logger

	assigner := trigger.NewWebhookClient(a.cfg.WebhookURL, a.cfg.TriggerTimeout, logger)
	registry := views.NewRegistry(views.Deps{
		Members:      a.members,
		Backlog:      a.backlog,
		Tasks:        a.tasks,
		Assigner:     assigner,
		Logger:       logger,
		RefreshDelay: a.cfg.RefreshDelay,
	})

	janitor := jobs.NewWorkspaceJanitor(registry, constants.WorkspaceSweepSchedule, a.cfg.WorkspaceIdleTTL, logger)
	if err := janitor.Start(); err != nil {
		return err
	}
	defer janitor.Stop()

	sessionStore, err := middleware.NewSessionStore(a.cfg)
	if err != nil {
		return err
	}

	engine, err := server.New(server.Deps{
		Logger:           logger,
		Client:           a.client,
		Members:          a.members,
		Backlog:          a.backlog,
		Tasks:            a.tasks,
		Assigner:         assigner,
		Registry:         registry,
		SessionStore:     sessionStore,
		CORSAllowOrigins: a.cfg.CORSAllowOrigins,
	})
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:    a.cfg.Addr(),
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", httpServer.Addr, "store", a.cfg.StoreDriver, "webhook", assigner.URL())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server stopped unexpectedly: %w", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	}

	logger.Info("server stopped")
	return nil
}
