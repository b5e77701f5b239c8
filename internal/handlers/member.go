package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskforce/internal/dto"
	apierrors "github.com/yukikurage/taskforce/internal/errors"
	"github.com/yukikurage/taskforce/internal/services"
	"github.com/yukikurage/taskforce/internal/utils"
)

// MemberHandler serves the member roster API.
type MemberHandler struct {
	memberService *services.MemberService
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(memberService *services.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// ListMembers returns every member, newest first.
func (h *MemberHandler) ListMembers(c *gin.Context) {
	members, err := h.memberService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberDTOs(members))
}

// CreateMember adds a member.
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	member, err := h.memberService.Add(c.Request.Context(), req.ToInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMemberDTO(*member))
}

// DeleteMember removes a member.
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id, err := utils.GetIDParam(c, "id")
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	if err := h.memberService.Remove(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
