// Package handler provides HTTP handlers for event registration endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hackfest/teams/internal/middleware"
	registrationModel "github.com/hackfest/teams/internal/registration/model"
	"github.com/hackfest/teams/internal/registration/service"
)

// Handler handles HTTP requests for registration endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new registration handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Register handles POST /events/:event_id/registrations request.
func (h *Handler) Register(c *gin.Context) {
	callerID := middleware.CallerID(c)
	if callerID == "" {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}
	eventID := c.Param("event_id")

	var req registrationModel.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "team_id is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), callerID, eventID, &req)
	if err != nil {
		switch {
		case errors.Is(err, registrationModel.ErrEventNotFound):
			errorResponse(c, "EVENT_NOT_FOUND", "event not found", http.StatusNotFound)
		case errors.Is(err, registrationModel.ErrNotAcceptedMember):
			errorResponse(c, "NOT_ACCEPTED_MEMBER", "only accepted team members can register the team", http.StatusForbidden)
		case errors.Is(err, registrationModel.ErrMissingRequiredField):
			errorResponse(c, "MISSING_REQUIRED_FIELD", err.Error(), http.StatusBadRequest)
		case errors.Is(err, registrationModel.ErrNotEligible):
			errorResponse(c, "NOT_ELIGIBLE", "team size is outside the event's allowed range", http.StatusConflict)
		case errors.Is(err, registrationModel.ErrAlreadyRegistered):
			errorResponse(c, "ALREADY_REGISTERED", "team is already registered for this event", http.StatusConflict)
		default:
			h.logger.Errorw("error registering team", "event_id", eventID, "team_id", req.TeamID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"registration": resp,
	})
}

// ListByTeam handles GET /teams/:team_id/registrations request.
func (h *Handler) ListByTeam(c *gin.Context) {
	callerID := middleware.CallerID(c)
	if callerID == "" {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}
	teamID := c.Param("team_id")

	regs, err := h.service.ListByTeam(c.Request.Context(), teamID)
	if err != nil {
		h.logger.Errorw("error listing registrations", "team_id", teamID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"registrations": regs,
	})
}
