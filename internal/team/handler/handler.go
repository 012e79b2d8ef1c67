// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hackfest/teams/internal/middleware"
	teamModel "github.com/hackfest/teams/internal/team/model"
	"github.com/hackfest/teams/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Create handles POST /teams request.
func (h *Handler) Create(c *gin.Context) {
	callerID := middleware.CallerID(c)
	if callerID == "" {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}

	var req teamModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), callerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, teamModel.ErrInvalidTeamName):
			errorResponse(c, "INVALID_REQUEST", "name is required", http.StatusBadRequest)
		case errors.Is(err, teamModel.ErrAlreadyHasActiveTeam):
			errorResponse(c, "ALREADY_HAS_ACTIVE_TEAM", "caller already has an active team", http.StatusConflict)
		case errors.Is(err, teamModel.ErrCodeGenerationFailed):
			h.logger.Errorw("join code generation exhausted retries", "caller_id", callerID)
			errorResponse(c, "CODE_GENERATION_FAILED", "could not generate a unique join code", http.StatusInternalServerError)
		default:
			h.logger.Errorw("error creating team", "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"team": resp,
	})
}

// Get handles GET /teams/:team_id request.
func (h *Handler) Get(c *gin.Context) {
	teamID := c.Param("team_id")

	resp, err := h.service.Get(c.Request.Context(), teamID)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			errorResponse(c, "TEAM_NOT_FOUND", "team not found", http.StatusNotFound)
			return
		}
		h.logger.Errorw("error getting team", "team_id", teamID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Rename handles PATCH /teams/:team_id request.
func (h *Handler) Rename(c *gin.Context) {
	callerID := middleware.CallerID(c)
	if callerID == "" {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}
	teamID := c.Param("team_id")

	var req teamModel.RenameTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Rename(c.Request.Context(), callerID, teamID, &req)
	if err != nil {
		switch {
		case errors.Is(err, teamModel.ErrTeamNotFound):
			errorResponse(c, "TEAM_NOT_FOUND", "team not found", http.StatusNotFound)
		case errors.Is(err, teamModel.ErrOnlyLeaderCanRename):
			errorResponse(c, "ONLY_LEADER_CAN_RENAME", "only the team leader can rename the team", http.StatusForbidden)
		case errors.Is(err, teamModel.ErrTeamAlreadyRegistered):
			errorResponse(c, "TEAM_ALREADY_REGISTERED", "team is already registered for an event", http.StatusConflict)
		case errors.Is(err, teamModel.ErrInvalidTeamName):
			errorResponse(c, "INVALID_REQUEST", "name is required", http.StatusBadRequest)
		default:
			h.logger.Errorw("error renaming team", "team_id", teamID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
