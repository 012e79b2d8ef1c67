// Package handler provides HTTP handlers for membership endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	membershipModel "github.com/hackfest/teams/internal/membership/model"
	"github.com/hackfest/teams/internal/membership/service"
	"github.com/hackfest/teams/internal/middleware"
)

// Handler handles HTTP requests for membership endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new membership handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// RequestJoin handles POST /join request.
func (h *Handler) RequestJoin(c *gin.Context) {
	callerID := middleware.CallerID(c)
	if callerID == "" {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}

	var req membershipModel.JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "CODE_INVALID", "code is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.RequestJoin(c.Request.Context(), callerID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, membershipModel.ErrCodeInvalid):
			errorResponse(c, "CODE_INVALID", "join code is malformed", http.StatusBadRequest)
		case errors.Is(err, membershipModel.ErrTeamNotFound):
			errorResponse(c, "TEAM_NOT_FOUND", "no team matches this code", http.StatusNotFound)
		case errors.Is(err, membershipModel.ErrCannotJoinOwnTeam):
			errorResponse(c, "CANNOT_JOIN_OWN_TEAM", "you lead this team already", http.StatusConflict)
		case errors.Is(err, membershipModel.ErrAlreadyInTeam):
			errorResponse(c, "ALREADY_IN_TEAM_OR_PENDING", "you already belong to this team or await approval", http.StatusConflict)
		case errors.Is(err, membershipModel.ErrAlreadyInAnotherTeam):
			errorResponse(c, "ALREADY_IN_ANOTHER_TEAM", "you already have an active membership in another team", http.StatusConflict)
		case errors.Is(err, membershipModel.ErrTeamFull):
			errorResponse(c, "TEAM_FULL", "team has reached its maximum size", http.StatusConflict)
		default:
			h.logger.Errorw("error requesting join", "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// CancelJoin handles DELETE /join request.
func (h *Handler) CancelJoin(c *gin.Context) {
	callerID := middleware.CallerID(c)
	if callerID == "" {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}

	err := h.service.CancelJoin(c.Request.Context(), callerID)
	if err != nil {
		if errors.Is(err, membershipModel.ErrNoPendingRequest) {
			errorResponse(c, "NO_PENDING_REQUEST", "no pending join request to cancel", http.StatusNotFound)
			return
		}
		h.logger.Errorw("error cancelling join", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, okResponse())
}

// Approve handles POST /teams/:team_id/members/:user_id/approve request.
func (h *Handler) Approve(c *gin.Context) {
	callerID := middleware.CallerID(c)
	if callerID == "" {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}
	teamID := c.Param("team_id")
	userID := c.Param("user_id")

	member, err := h.service.Approve(c.Request.Context(), callerID, teamID, userID)
	if err != nil {
		switch {
		case errors.Is(err, membershipModel.ErrTeamNotFound):
			errorResponse(c, "TEAM_NOT_FOUND", "team not found", http.StatusNotFound)
		case errors.Is(err, membershipModel.ErrOnlyLeaderCanApprove):
			errorResponse(c, "ONLY_LEADER_CAN_APPROVE", "only the team leader can approve requests", http.StatusForbidden)
		case errors.Is(err, membershipModel.ErrMemberNotFound):
			errorResponse(c, "MEMBER_NOT_FOUND", "no pending request for this user", http.StatusNotFound)
		case errors.Is(err, membershipModel.ErrTeamFull):
			errorResponse(c, "TEAM_FULL", "team has reached its maximum size", http.StatusConflict)
		default:
			h.logger.Errorw("error approving member", "team_id", teamID, "user_id", userID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"member": member,
	})
}

// Reject handles POST /teams/:team_id/members/:user_id/reject request.
func (h *Handler) Reject(c *gin.Context) {
	callerID := middleware.CallerID(c)
	if callerID == "" {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}
	teamID := c.Param("team_id")
	userID := c.Param("user_id")

	err := h.service.Reject(c.Request.Context(), callerID, teamID, userID)
	if err != nil {
		switch {
		case errors.Is(err, membershipModel.ErrTeamNotFound):
			errorResponse(c, "TEAM_NOT_FOUND", "team not found", http.StatusNotFound)
		case errors.Is(err, membershipModel.ErrOnlyLeaderCanApprove):
			errorResponse(c, "ONLY_LEADER_CAN_APPROVE", "only the team leader can reject requests", http.StatusForbidden)
		case errors.Is(err, membershipModel.ErrMemberNotFound):
			errorResponse(c, "MEMBER_NOT_FOUND", "no pending request for this user", http.StatusNotFound)
		default:
			h.logger.Errorw("error rejecting member", "team_id", teamID, "user_id", userID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, okResponse())
}

// Remove handles DELETE /teams/:team_id/members/:user_id request.
func (h *Handler) Remove(c *gin.Context) {
	callerID := middleware.CallerID(c)
	if callerID == "" {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}
	teamID := c.Param("team_id")
	userID := c.Param("user_id")

	err := h.service.Remove(c.Request.Context(), callerID, teamID, userID)
	if err != nil {
		switch {
		case errors.Is(err, membershipModel.ErrTeamNotFound):
			errorResponse(c, "TEAM_NOT_FOUND", "team not found", http.StatusNotFound)
		case errors.Is(err, membershipModel.ErrOnlyLeaderCanRemove):
			errorResponse(c, "ONLY_LEADER_CAN_REMOVE", "only the team leader can remove members", http.StatusForbidden)
		case errors.Is(err, membershipModel.ErrCannotRemoveYourself):
			errorResponse(c, "CANNOT_REMOVE_YOURSELF", "the leader cannot remove themselves", http.StatusConflict)
		case errors.Is(err, membershipModel.ErrMemberNotFound):
			errorResponse(c, "MEMBER_NOT_FOUND", "no accepted member for this user", http.StatusNotFound)
		default:
			h.logger.Errorw("error removing member", "team_id", teamID, "user_id", userID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, okResponse())
}

// Leave handles POST /leave request.
func (h *Handler) Leave(c *gin.Context) {
	callerID := middleware.CallerID(c)
	if callerID == "" {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}

	err := h.service.Leave(c.Request.Context(), callerID)
	if err != nil {
		switch {
		case errors.Is(err, membershipModel.ErrNotAMember):
			errorResponse(c, "NOT_A_MEMBER", "you are not an accepted member of any team", http.StatusNotFound)
		case errors.Is(err, membershipModel.ErrLeaderCannotLeave):
			errorResponse(c, "LEADER_CANNOT_LEAVE", "the team leader cannot leave the team", http.StatusConflict)
		default:
			h.logger.Errorw("error leaving team", "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, okResponse())
}

// MyStatus handles GET /me/team request.
// The optional event_id query parameter adds an eligibility block for
// accepted members.
func (h *Handler) MyStatus(c *gin.Context) {
	callerID := middleware.CallerID(c)
	if callerID == "" {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}
	eventID := c.Query("event_id")

	resp, err := h.service.MyStatus(c.Request.Context(), callerID, eventID)
	if err != nil {
		if errors.Is(err, membershipModel.ErrEventNotFound) {
			errorResponse(c, "EVENT_NOT_FOUND", "event not found", http.StatusNotFound)
			return
		}
		h.logger.Errorw("error getting team status", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
