package constants

import "time"

// Session keys
const (
	SessionCookieName     = "taskforce_session"
	SessionKeyWorkspaceID = "workspace_id"
)

// Context keys
const (
	ContextKeyWorkspace = "workspace"
)

// Table names in the data store
const (
	TableMembers       = "members"
	TableExpectedTasks = "expected_tasks"
	TableTasks         = "tasks"
)

// Trigger proxy
const (
	DefaultTriggerTimeout = 120 * time.Second
	DefaultRefreshDelay   = 3 * time.Second

	TriggerSuccessMessage = "AI Agent triggered successfully"
	TriggerFailureMessage = "Failed to trigger AI Agent"
)

// Dashboard
const (
	DefaultWorkspaceIdleTTL = 30 * time.Minute
	WorkspaceSweepSchedule  = "@every 1m"

	BacklogDateLayout = "02/01/2006 15:04"
	StatusDateLayout  = "02/01/2006 15:04:05"
)
