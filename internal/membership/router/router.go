// Package router provides membership module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hackfest/teams/internal/config"
	eventRepository "github.com/hackfest/teams/internal/event/repository"
	"github.com/hackfest/teams/internal/membership/handler"
	"github.com/hackfest/teams/internal/membership/repository"
	"github.com/hackfest/teams/internal/membership/service"
	teamRepository "github.com/hackfest/teams/internal/team/repository"
)

// RegisterRoutes registers membership module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, cfg config.TeamConfig, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	teams := teamRepository.New(db)
	events := eventRepository.New(db)
	svc := service.New(repo, teams, events, db, cfg, logger)
	h := handler.New(svc, logger)

	r.POST("/join", h.RequestJoin)
	r.DELETE("/join", h.CancelJoin)
	r.POST("/leave", h.Leave)
	r.GET("/me/team", h.MyStatus)
	r.POST("/teams/:team_id/members/:user_id/approve", h.Approve)
	r.POST("/teams/:team_id/members/:user_id/reject", h.Reject)
	r.DELETE("/teams/:team_id/members/:user_id", h.Remove)
}
