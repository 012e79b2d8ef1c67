// Package repository provides data access layer for the team module.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	teamModel "github.com/hackfest/teams/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create inserts a new team. Returns ErrCodeTaken on a join-code collision.
	Create(ctx context.Context, team *teamModel.Team) error

	// GetByID finds a team by id.
	GetByID(ctx context.Context, id string) (*teamModel.Team, error)

	// GetByCode finds a team by its normalized join code.
	GetByCode(ctx context.Context, code string) (*teamModel.Team, error)

	// UpdateName updates a team's display name.
	UpdateName(ctx context.Context, id, name string) error

	// Touch writes the team row so that, inside a transaction, concurrent
	// membership mutations on the same team serialize on its row lock.
	Touch(ctx context.Context, id string) error

	// CountRegistrations returns the number of event registrations held by a team.
	CountRegistrations(ctx context.Context, teamID string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a new team.
func (r *repository) Create(ctx context.Context, team *teamModel.Team) error {
	err := r.db.WithContext(ctx).Create(team).Error
	if err != nil {
		if isDuplicateError(err) {
			return teamModel.ErrCodeTaken
		}
		return err
	}
	return nil
}

// GetByID finds a team by id.
func (r *repository) GetByID(ctx context.Context, id string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// GetByCode finds a team by its normalized join code.
func (r *repository) GetByCode(ctx context.Context, code string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// UpdateName updates a team's display name.
func (r *repository) UpdateName(ctx context.Context, id, name string) error {
	res := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"name": name, "updated_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return teamModel.ErrTeamNotFound
	}
	return nil
}

// Touch writes the team row to take its row lock.
func (r *repository) Touch(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("id = ?", id).
		Update("updated_at", time.Now()).Error
}

// CountRegistrations returns the number of event registrations held by a team.
func (r *repository) CountRegistrations(ctx context.Context, teamID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("event_registrations").
		Where("team_id = ?", teamID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
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
