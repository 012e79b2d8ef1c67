// Package service provides business logic layer for the event module.
package service

import (
	"context"

	eventModel "github.com/hackfest/teams/internal/event/model"
	"github.com/hackfest/teams/internal/event/repository"
)

// Service defines the interface for event read operations. Events are
// provisioned through migrations, so there is no write surface here.
type Service interface {
	// Get returns a single event.
	Get(ctx context.Context, id string) (*eventModel.Event, error)

	// List returns all events.
	List(ctx context.Context) ([]eventModel.Event, error)
}

type service struct {
	repo repository.Repository
}

// New creates a new event service instance.
func New(repo repository.Repository) Service {
	return &service{repo: repo}
}

// Get returns a single event.
func (s *service) Get(ctx context.Context, id string) (*eventModel.Event, error) {
	if id == "" {
		return nil, eventModel.ErrEventNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// List returns all events.
func (s *service) List(ctx context.Context) ([]eventModel.Event, error) {
	return s.repo.List(ctx)
}
