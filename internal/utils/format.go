package utils

import (
	"github.com/yukikurage/taskforce/internal/constants"
	"github.com/yukikurage/taskforce/internal/models"
)

// EmptyPlaceholder is shown for missing values
const EmptyPlaceholder = "-"

// FormatBacklogDate renders a deadline as DD/MM/YYYY HH:mm, or "-" when unset
func FormatBacklogDate(ts *models.Timestamp) string {
	if ts == nil || ts.IsZero() {
		return EmptyPlaceholder
	}
	return ts.Format(constants.BacklogDateLayout)
}

// FormatStatusDate renders a timestamp as DD/MM/YYYY HH:mm:ss, or "-" when unset
func FormatStatusDate(ts *models.Timestamp) string {
	if ts == nil || ts.IsZero() {
		return EmptyPlaceholder
	}
	return ts.Format(constants.StatusDateLayout)
}

// Deref returns the pointed-to string, or "-" for nil or empty
func Deref(s *string) string {
	if s == nil || *s == "" {
		return EmptyPlaceholder
	}
	return *s
}
