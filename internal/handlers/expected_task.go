package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskforce/internal/dto"
	apierrors "github.com/yukikurage/taskforce/internal/errors"
	"github.com/yukikurage/taskforce/internal/services"
	"github.com/yukikurage/taskforce/internal/utils"
)

// ExpectedTaskHandler serves the backlog API.
type ExpectedTaskHandler struct {
	backlogService *services.BacklogService
}

func NewExpectedTaskHandler(backlogService *services.BacklogService) *ExpectedTaskHandler {
	return &ExpectedTaskHandler{backlogService: backlogService}
}

func (h *ExpectedTaskHandler) ListExpectedTasks(c *gin.Context) {
	tasks, err := h.backlogService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToExpectedTaskDTOs(tasks))
}

func (h *ExpectedTaskHandler) CreateExpectedTask(c *gin.Context) {
	var req dto.CreateExpectedTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.backlogService.Add(c.Request.Context(), req.ToInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpectedTaskDTO(*task))
}

func (h *ExpectedTaskHandler) DeleteExpectedTask(c *gin.Context) {
	id, err := utils.GetIDParam(c, "id")
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	if err := h.backlogService.Remove(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
