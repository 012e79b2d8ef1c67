// Package router provides registration module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	eventRepository "github.com/hackfest/teams/internal/event/repository"
	membershipRepository "github.com/hackfest/teams/internal/membership/repository"
	"github.com/hackfest/teams/internal/registration/handler"
	"github.com/hackfest/teams/internal/registration/repository"
	"github.com/hackfest/teams/internal/registration/service"
	teamRepository "github.com/hackfest/teams/internal/team/repository"
)

// RegisterRoutes registers registration module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	events := eventRepository.New(db)
	members := membershipRepository.New(db)
	teams := teamRepository.New(db)
	svc := service.New(repo, events, members, teams, db, logger)
	h := handler.New(svc, logger)

	r.POST("/events/:event_id/registrations", h.Register)
	r.GET("/teams/:team_id/registrations", h.ListByTeam)
}
