package services

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validationError maps the first failing field of a validator error to the
// sentinel registered for it. Unknown fields fall back to err itself.
func validationError(err error, sentinels map[string]error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	if sentinel, ok := sentinels[fieldErrs[0].StructField()]; ok {
		return sentinel
	}
	return err
}
