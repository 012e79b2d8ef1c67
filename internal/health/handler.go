// Package health provides the health check endpoint.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hackfest/teams/internal/database"
)

const pingTimeout = 5 * time.Second

// Handler serves readiness probes.
type Handler struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new health handler.
func New(db *gorm.DB, logger *zap.SugaredLogger) *Handler {
	return &Handler{db: db, logger: logger}
}

// Response is the health probe payload.
type Response struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Check handles GET /health. The service is healthy when the database
// answers a ping within the timeout.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	if err := database.HealthCheck(ctx, h.db); err != nil {
		h.logger.Warnw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, Response{Status: "unhealthy", Database: "down"})
		return
	}

	c.JSON(http.StatusOK, Response{Status: "ok", Database: "up"})
}
