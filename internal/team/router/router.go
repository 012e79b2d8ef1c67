// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hackfest/teams/internal/config"
	membershipRepository "github.com/hackfest/teams/internal/membership/repository"
	"github.com/hackfest/teams/internal/team/handler"
	"github.com/hackfest/teams/internal/team/repository"
	"github.com/hackfest/teams/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, cfg config.TeamConfig, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	members := membershipRepository.New(db)
	svc := service.New(repo, members, db, cfg, logger)
	h := handler.New(svc, logger)

	r.POST("/teams", h.Create)
	r.GET("/teams/:team_id", h.Get)
	r.PATCH("/teams/:team_id", h.Rename)
}
