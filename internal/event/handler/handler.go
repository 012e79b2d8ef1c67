// Package handler provides HTTP handlers for event endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	eventModel "github.com/hackfest/teams/internal/event/model"
	"github.com/hackfest/teams/internal/event/service"
)

// Handler handles HTTP requests for event endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new event handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /events request.
func (h *Handler) List(c *gin.Context) {
	events, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing events", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"events": events,
	})
}

// Get handles GET /events/:event_id request.
func (h *Handler) Get(c *gin.Context) {
	eventID := c.Param("event_id")

	event, err := h.service.Get(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, eventModel.ErrEventNotFound) {
			errorResponse(c, "EVENT_NOT_FOUND", "event not found", http.StatusNotFound)
			return
		}
		h.logger.Errorw("error getting event", "event_id", eventID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, event)
}

// ErrorResponse represents error response structure.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// errorResponse creates an error response with a stable machine-readable code.
func errorResponse(c *gin.Context, code string, message string, statusCode int) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(statusCode, resp)
}
