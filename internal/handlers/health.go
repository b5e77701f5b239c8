package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/taskforce/internal/errors"
	"github.com/yukikurage/taskforce/internal/store"
)

type HealthHandler struct {
	client store.Client
}

func NewHealthHandler(client store.Client) *HealthHandler {
	return &HealthHandler{client: client}
}

// Health reports whether the data store answers.
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.client.Ping(c.Request.Context()); err != nil {
		apierrors.ServiceUnavailable(c, "Data store unreachable: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "AI TaskForce is running",
	})
}
