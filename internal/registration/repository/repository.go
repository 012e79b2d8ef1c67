// Package repository provides data access layer for the registration module.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	registrationModel "github.com/hackfest/teams/internal/registration/model"
)

// Repository defines the interface for registration data access operations.
type Repository interface {
	// Create inserts a registration row. The (event_id, team_id) unique index
	// resolves concurrent duplicates; the loser gets ErrAlreadyRegistered.
	Create(ctx context.Context, reg *registrationModel.EventRegistration) error

	// ListByTeam returns all registrations held by a team.
	ListByTeam(ctx context.Context, teamID string) ([]registrationModel.EventRegistration, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new registration repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a registration row.
func (r *repository) Create(ctx context.Context, reg *registrationModel.EventRegistration) error {
	err := r.db.WithContext(ctx).Create(reg).Error
	if err != nil {
		if isDuplicateError(err) {
			return registrationModel.ErrAlreadyRegistered
		}
		return err
	}
	return nil
}

// ListByTeam returns all registrations held by a team.
func (r *repository) ListByTeam(ctx context.Context, teamID string) ([]registrationModel.EventRegistration, error) {
	var regs []registrationModel.EventRegistration
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("registered_at ASC").
		Find(&regs).Error
	if err != nil {
		return nil, err
	}

	if regs == nil {
		return []registrationModel.EventRegistration{}, nil
	}

	return regs, nil
}

// isDuplicateError checks if error is a unique-constraint violation.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint")
}
