package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskforce/internal/dto"
	"github.com/yukikurage/taskforce/internal/middleware"
	"github.com/yukikurage/taskforce/internal/models"
	"github.com/yukikurage/taskforce/internal/utils"
	"github.com/yukikurage/taskforce/internal/views"
)

const (
	flashError  = "error"
	flashNotice = "notice"
	// flashKeepBacklog makes the next backlog GET render the cached list.
	flashKeepBacklog = "keep_backlog"

	triggerSentNotice = "Request sent to the assignment workflow successfully!"
)

// page is the data every dashboard template renders from.
type page struct {
	Title       string
	Active      string
	Errors      []string
	Notices     []string
	FetchFailed bool
	ReloadAfter int

	Members []models.Member
	Tasks   any
	Draft   any
	Adding  bool

	Selected    map[uint64]bool
	AllSelected bool
	Triggering  bool
}

// DashboardHandler serves the server-rendered dashboard. Each request acts on
// the workspace bound by middleware.RequireWorkspace.
type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Register mounts the dashboard routes on r.
func (h *DashboardHandler) Register(r gin.IRoutes) {
	r.GET("/", h.Index)
	r.GET("/members", h.Members)
	r.POST("/members", h.AddMember)
	r.POST("/members/:id/delete", h.RemoveMember)
	r.GET("/backlog", h.Backlog)
	r.POST("/backlog", h.AddTask)
	r.POST("/backlog/:id/delete", h.RemoveTask)
	r.POST("/backlog/:id/toggle", h.ToggleSelect)
	r.POST("/backlog/select-all", h.ToggleSelectAll)
	r.POST("/backlog/trigger", h.TriggerAssignment)
	r.GET("/status", h.Status)
}

func (h *DashboardHandler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, "/members")
}

func (h *DashboardHandler) Members(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	_ = ws.Members.Refresh(c.Request.Context())

	p := newPage(c, "Member Management", "members")
	p.FetchFailed = ws.Members.FetchState().State == views.Failed
	p.Members = ws.Members.Members()
	p.Draft = ws.Members.Draft()
	p.Adding = ws.Members.AddState().State == views.InFlight
	c.HTML(http.StatusOK, "members.html", p)
}

func (h *DashboardHandler) AddMember(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}

	var req dto.CreateMemberRequest
	if err := c.ShouldBind(&req); err != nil {
		addFlash(c, flashError, "Error adding member: "+err.Error())
		redirect(c, "/members")
		return
	}
	if err := ws.Members.AddMember(c.Request.Context(), req.ToInput()); err != nil {
		addFlash(c, flashError, "Error adding member: "+err.Error())
	}
	redirect(c, "/members")
}

func (h *DashboardHandler) RemoveMember(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}

	id, err := utils.GetIDParam(c, "id")
	if err != nil {
		addFlash(c, flashError, err.Error())
		redirect(c, "/members")
		return
	}
	err = ws.Members.RemoveMember(c.Request.Context(), id, utils.IsConfirmed(c))
	if err != nil && !errors.Is(err, views.ErrNotConfirmed) {
		addFlash(c, flashError, "Error deleting member: "+err.Error())
	}
	redirect(c, "/members")
}

func (h *DashboardHandler) Backlog(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	backlog := ws.Backlog
	keep := takeFlag(c, flashKeepBacklog)
	if !keep && !backlog.RefreshPending() {
		_ = backlog.Refresh(c.Request.Context())
	}

	p := newPage(c, "AI Task Assignment", "backlog")
	p.FetchFailed = backlog.FetchState().State == views.Failed
	p.Tasks = backlog.Tasks()
	p.Draft = backlog.Draft()
	p.Adding = backlog.AddState().State == views.InFlight
	p.Triggering = backlog.TriggerState().State == views.InFlight
	p.AllSelected = backlog.AllSelected()
	p.Selected = make(map[uint64]bool)
	for _, id := range backlog.Selected() {
		p.Selected[id] = true
	}
	if backlog.RefreshPending() {
		p.ReloadAfter = reloadSeconds(backlog.RefreshDelay())
	}
	c.HTML(http.StatusOK, "backlog.html", p)
}

func (h *DashboardHandler) AddTask(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}

	var req dto.CreateExpectedTaskRequest
	if err := c.ShouldBind(&req); err != nil {
		addFlash(c, flashError, "Error adding task: "+err.Error())
		redirect(c, "/backlog")
		return
	}
	if err := ws.Backlog.AddTask(c.Request.Context(), req.ToInput()); err != nil {
		addFlash(c, flashError, "Error adding task: "+err.Error())
	}
	redirect(c, "/backlog")
}

func (h *DashboardHandler) RemoveTask(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}

	id, err := utils.GetIDParam(c, "id")
	if err != nil {
		addFlash(c, flashError, err.Error())
		redirect(c, "/backlog")
		return
	}
	err = ws.Backlog.RemoveTask(c.Request.Context(), id, utils.IsConfirmed(c))
	if err != nil && !errors.Is(err, views.ErrNotConfirmed) {
		addFlash(c, flashError, "Error deleting task: "+err.Error())
	}
	redirect(c, "/backlog")
}

func (h *DashboardHandler) ToggleSelect(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	if id, err := utils.GetIDParam(c, "id"); err == nil {
		ws.Backlog.ToggleSelect(id)
	}
	redirect(c, "/backlog")
}

func (h *DashboardHandler) ToggleSelectAll(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	ws.Backlog.ToggleSelectAll()
	redirect(c, "/backlog")
}

func (h *DashboardHandler) TriggerAssignment(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}

	_, err := ws.Backlog.TriggerAssignment(context.WithoutCancel(c.Request.Context()))
	if err != nil {
		addFlash(c, flashError, "Failed to trigger: "+err.Error())
		addFlash(c, flashKeepBacklog, "1")
	} else {
		addFlash(c, flashNotice, triggerSentNotice)
	}
	redirect(c, "/backlog")
}

func (h *DashboardHandler) Status(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	_ = ws.Status.Refresh(c.Request.Context())

	p := newPage(c, "Project Overview", "status")
	p.FetchFailed = ws.Status.FetchState().State == views.Failed
	p.Tasks = ws.Status.Tasks()
	c.HTML(http.StatusOK, "status.html", p)
}

func workspace(c *gin.Context) (*views.Workspace, bool) {
	ws, ok := middleware.GetWorkspace(c)
	if !ok {
		c.String(http.StatusInternalServerError, "workspace not bound")
		return nil, false
	}
	return ws, true
}

// newPage consumes the session's pending flashes.
func newPage(c *gin.Context, title, active string) *page {
	session := sessions.Default(c)
	p := &page{
		Title:   title,
		Active:  active,
		Errors:  flashStrings(session.Flashes(flashError)),
		Notices: flashStrings(session.Flashes(flashNotice)),
	}
	if len(p.Errors) > 0 || len(p.Notices) > 0 {
		_ = session.Save()
	}
	return p
}

func addFlash(c *gin.Context, kind, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, kind)
	_ = session.Save()
}

// takeFlag consumes a one-shot marker flash.
func takeFlag(c *gin.Context, key string) bool {
	session := sessions.Default(c)
	if len(session.Flashes(key)) == 0 {
		return false
	}
	_ = session.Save()
	return true
}

func flashStrings(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

// reloadSeconds rounds the refresh delay up and adds a second so the reload
// lands after the delayed re-fetch.
func reloadSeconds(d time.Duration) int {
	secs := int((d + time.Second - 1) / time.Second)
	return secs + 1
}
