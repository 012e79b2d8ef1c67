// Package router provides event module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hackfest/teams/internal/event/handler"
	"github.com/hackfest/teams/internal/event/repository"
	"github.com/hackfest/teams/internal/event/service"
)

// RegisterRoutes registers event module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo)
	h := handler.New(svc, logger)

	r.GET("/events", h.List)
	r.GET("/events/:event_id", h.Get)
}
