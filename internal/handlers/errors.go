package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/taskforce/internal/errors"
	"github.com/yukikurage/taskforce/internal/services"
)

func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrFullNameRequired),
		errors.Is(err, services.ErrEmailRequired),
		errors.Is(err, services.ErrDescriptionRequired):
		apierrors.MissingField(c, err.Error())
	case errors.Is(err, services.ErrInvalidMemberStatus),
		errors.Is(err, services.ErrInvalidDeadline):
		apierrors.InvalidFormat(c, err.Error())
	case errors.Is(err, services.ErrInvalidID):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.StoreError(c, err)
	}
}
