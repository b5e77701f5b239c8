// Package server assembles the gin engine: JSON API, trigger proxy, health
// check and the session-backed dashboard.
package server

import (
	"fmt"
	"log/slog"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/taskforce/internal/errors"
	"github.com/yukikurage/taskforce/internal/handlers"
	"github.com/yukikurage/taskforce/internal/middleware"
	"github.com/yukikurage/taskforce/internal/services"
	"github.com/yukikurage/taskforce/internal/store"
	"github.com/yukikurage/taskforce/internal/trigger"
	"github.com/yukikurage/taskforce/internal/views"
	"github.com/yukikurage/taskforce/internal/web"
)

type Deps struct {
	Logger           *slog.Logger
	Client           store.Client
	Members          *services.MemberService
	Backlog          *services.BacklogService
	Tasks            *services.TaskService
	Assigner         trigger.Assigner
	Registry         *views.Registry
	SessionStore     sessions.Store
	CORSAllowOrigins []string
}

// New builds the router. Gin's mode must be set by the caller beforehand.
func New(d Deps) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	r := gin.Default()
	r.Use(middleware.CORS(d.CORSAllowOrigins))
	r.SetHTMLTemplate(tmpl)

	healthHandler := handlers.NewHealthHandler(d.Client)
	memberHandler := handlers.NewMemberHandler(d.Members)
	backlogHandler := handlers.NewExpectedTaskHandler(d.Backlog)
	taskHandler := handlers.NewTaskHandler(d.Tasks)
	triggerHandler := handlers.NewTriggerHandler(d.Assigner)
	dashboardHandler := handlers.NewDashboardHandler()

	// Health check endpoint
	r.GET("/health", healthHandler.Health)

	// API routes
	api := r.Group("/api")
	{
		api.GET("/members", memberHandler.ListMembers)
		api.POST("/members", memberHandler.CreateMember)
		api.DELETE("/members/:id", memberHandler.DeleteMember)

		api.GET("/expected-tasks", backlogHandler.ListExpectedTasks)
		api.POST("/expected-tasks", backlogHandler.CreateExpectedTask)
		api.DELETE("/expected-tasks/:id", backlogHandler.DeleteExpectedTask)

		api.GET("/tasks", taskHandler.ListTasks)

		api.GET("/trigger-ai", triggerHandler.TriggerAI)
	}

	// Dashboard routes (one workspace per session)
	dashboard := r.Group("/")
	dashboard.Use(middleware.Sessions(d.SessionStore), middleware.RequireWorkspace(d.Registry))
	dashboardHandler.Register(dashboard)

	r.NoRoute(func(c *gin.Context) {
		apierrors.NotFound(c, "")
	})

	if d.Logger != nil {
		d.Logger.Debug("routes registered", "count", len(r.Routes()))
	}
	return r, nil
}
