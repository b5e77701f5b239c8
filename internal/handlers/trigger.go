package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskforce/internal/constants"
	"github.com/yukikurage/taskforce/internal/trigger"
)

// TriggerHandler proxies the assignment workflow so browsers on other
// origins can reach it.
type TriggerHandler struct {
	assigner trigger.Assigner
}

func NewTriggerHandler(assigner trigger.Assigner) *TriggerHandler {
	return &TriggerHandler{assigner: assigner}
}

// TriggerAI fires the workflow once and relays the outcome in the
// success/message envelope. The upstream call outlives a client disconnect.
func (h *TriggerHandler) TriggerAI(c *gin.Context) {
	result, err := h.assigner.TriggerAssignment(context.WithoutCancel(c.Request.Context()))
	if err != nil {
		c.JSON(http.StatusInternalServerError, trigger.Response{
			Success: false,
			Message: constants.TriggerFailureMessage,
			Error:   err.Error(),
		})
		return
	}

	data := result.Data
	if len(data) == 0 {
		data = []byte("null")
	}
	c.JSON(http.StatusOK, trigger.Response{
		Success: true,
		Message: constants.TriggerSuccessMessage,
		Data:    data,
	})
}
