package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

var ErrInvalidIDParam = errors.New("id must be a positive integer")

// GetIDParam extracts a positive integer route parameter
func GetIDParam(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidIDParam
	}
	return id, nil
}

// IsConfirmed reports whether a form carried the delete confirmation
func IsConfirmed(c *gin.Context) bool {
	confirmed, _ := strconv.ParseBool(c.DefaultPostForm("confirmed", "false"))
	return confirmed
}
