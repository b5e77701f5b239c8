// Package trigger fires the external assignment workflow. The workflow's
// logic is opaque: one GET to a fixed URL, one outcome, no retries.
package trigger

import (
	"context"
	"encoding/json"
)

// Assigner requests assignment of the whole backlog.
type Assigner interface {
	TriggerAssignment(ctx context.Context) (*Result, error)
}

// Result is a successful trigger. Data is the upstream body passed through
// untouched: raw JSON when the body is JSON, a JSON string otherwise.
type Result struct {
	StatusCode int
	Data       json.RawMessage
}

// Response is the proxy's wire envelope.
type Response struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}
