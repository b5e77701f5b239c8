package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yukikurage/taskforce/internal/constants"
	apierrors "github.com/yukikurage/taskforce/internal/errors"
	"github.com/yukikurage/taskforce/internal/views"
)

// WorkspaceRegistry hands out the views owned by a session
type WorkspaceRegistry interface {
	Get(id string) *views.Workspace
}

// RequireWorkspace binds the request to its session's workspace, issuing a
// new workspace id on the first visit
func RequireWorkspace(registry WorkspaceRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		id, _ := session.Get(constants.SessionKeyWorkspaceID).(string)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
			session.Set(constants.SessionKeyWorkspaceID, id)
			if err := session.Save(); err != nil {
				apierrors.InternalError(c, "Failed to save session")
				c.Abort()
				return
			}
		}

		// Store the workspace in context for easy access in handlers
		c.Set(constants.ContextKeyWorkspace, registry.Get(id))
		c.Next()
	}
}

// GetWorkspace retrieves the current workspace from context
func GetWorkspace(c *gin.Context) (*views.Workspace, bool) {
	value, exists := c.Get(constants.ContextKeyWorkspace)
	if !exists {
		return nil, false
	}
	ws, ok := value.(*views.Workspace)
	return ws, ok && ws != nil
}
