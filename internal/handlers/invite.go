package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/teamspace-dev/teamspace-api/internal/errors"
	"github.com/teamspace-dev/teamspace-api/internal/middleware"
	"github.com/teamspace-dev/teamspace-api/internal/services"
)

// InviteHandler redeems guest invitations.
type InviteHandler struct {
	inviteService *services.InviteService
}

// NewInviteHandler creates a new InviteHandler.
func NewInviteHandler(inviteService *services.InviteService) *InviteHandler {
	return &InviteHandler{
		inviteService: inviteService,
	}
}

// AcceptInvite redeems an invitation code and grants the acting user guest
// access to the invited project.
func (h *InviteHandler) AcceptInvite(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type AcceptInviteRequest struct {
		Code string `json:"code" binding:"required"`
	}

	var req AcceptInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	invite, err := h.inviteService.AcceptInvite(req.Code, userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInviteNotFound):
			apierrors.NotFound(c, err.Error())
		case errors.Is(err, services.ErrInviteAlreadyUsed):
			apierrors.Conflict(c, err.Error())
		case errors.Is(err, services.ErrInviteEmailMismatch):
			apierrors.Forbidden(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to accept invite")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Invite accepted",
		"project_id": invite.ProjectID,
	})
}
