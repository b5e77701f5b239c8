// Package web holds the dashboard's embedded HTML templates.
package web

import (
	"embed"
	"html/template"
	"strings"

	"github.com/yukikurage/taskforce/internal/models"
	"github.com/yukikurage/taskforce/internal/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

// Funcs are the helpers available to every template.
var Funcs = template.FuncMap{
	"backlogDate": utils.FormatBacklogDate,
	"statusDate":  utils.FormatStatusDate,
	"deref":       utils.Deref,
	"statusClass": statusClass,
	"statusLabel": statusLabel,
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs).ParseFS(templateFS, "templates/*.html")
}

func statusLabel(status *string) string {
	if status == nil || strings.TrimSpace(*status) == "" {
		return models.TaskStatusTodo
	}
	return *status
}

func statusClass(status *string) string {
	switch statusLabel(status) {
	case models.TaskStatusDone:
		return "status-done"
	case models.TaskStatusInProgress:
		return "status-progress"
	default:
		return "status-todo"
	}
}
