// Package repository provides data access layer for the event module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	eventModel "github.com/hackfest/teams/internal/event/model"
)

// Repository defines the interface for event data access operations.
type Repository interface {
	// GetByID finds an event by id.
	GetByID(ctx context.Context, id string) (*eventModel.Event, error)

	// List returns all events ordered by creation time.
	List(ctx context.Context) ([]eventModel.Event, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new event repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetByID finds an event by id.
func (r *repository) GetByID(ctx context.Context, id string) (*eventModel.Event, error) {
	var event eventModel.Event
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&event).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, eventModel.ErrEventNotFound
		}
		return nil, err
	}

	return &event, nil
}

// List returns all events ordered by creation time.
func (r *repository) List(ctx context.Context) ([]eventModel.Event, error) {
	var events []eventModel.Event
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	if events == nil {
		return []eventModel.Event{}, nil
	}

	return events, nil
}
