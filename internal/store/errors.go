package store

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Error is a failure reported by the REST backend. Error returns the
// backend's message verbatim so it can be shown to the user as-is.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *Error) Error() string {
	return e.Message
}

// decodeError builds an Error from a non-2xx response body.
func decodeError(status int, body []byte) *Error {
	e := &Error{Status: status}
	if err := json.Unmarshal(body, e); err != nil || e.Message == "" {
		e.Message = strings.TrimSpace(string(body))
	}
	if e.Message == "" {
		e.Message = http.StatusText(status)
	}
	return e
}
