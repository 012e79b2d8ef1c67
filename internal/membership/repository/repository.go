// Package repository provides data access layer for the membership ledger.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	membershipModel "github.com/hackfest/teams/internal/membership/model"
)

// Repository defines the interface for membership data access operations.
//
// Every stored membership row is active (pending or accepted); rows are
// deleted on reject, cancel, leave and remove. The unique index on user_id
// is the store-level guarantee behind "one active membership per user".
type Repository interface {
	// Create inserts a membership row. A unique-index violation maps to
	// ErrAlreadyInAnotherTeam (the caller already holds an active membership).
	Create(ctx context.Context, m *membershipModel.Membership) error

	// GetByUser returns the caller's membership row, if any.
	GetByUser(ctx context.Context, userID string) (*membershipModel.Membership, error)

	// Get returns the membership row for (teamID, userID).
	Get(ctx context.Context, teamID, userID string) (*membershipModel.Membership, error)

	// CountAccepted returns the number of accepted members of a team.
	CountAccepted(ctx context.Context, teamID string) (int64, error)

	// ListByTeam returns all members of a team ordered by join time.
	ListByTeam(ctx context.Context, teamID string) ([]membershipModel.MemberView, error)

	// AcceptPending flips a pending membership to accepted, guarded by the
	// team's accepted-member count staying below maxAccepted within the same
	// statement. Returns ErrTeamFull when the guard fails and
	// ErrMemberNotFound when no pending row exists.
	AcceptPending(ctx context.Context, teamID, userID string, maxAccepted int) error

	// DeletePending deletes a pending row for (teamID, userID).
	DeletePending(ctx context.Context, teamID, userID string) error

	// DeletePendingByUser deletes the caller's pending row, wherever it is.
	DeletePendingByUser(ctx context.Context, userID string) error

	// DeleteMember deletes an accepted non-leader membership row.
	DeleteMember(ctx context.Context, teamID, userID string) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new membership repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a membership row.
func (r *repository) Create(ctx context.Context, m *membershipModel.Membership) error {
	err := r.db.WithContext(ctx).Create(m).Error
	if err != nil {
		if isDuplicateError(err) {
			return membershipModel.ErrAlreadyInAnotherTeam
		}
		return err
	}
	return nil
}

// GetByUser returns the caller's membership row, if any.
func (r *repository) GetByUser(ctx context.Context, userID string) (*membershipModel.Membership, error) {
	var m membershipModel.Membership
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&m).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, membershipModel.ErrMemberNotFound
		}
		return nil, err
	}

	return &m, nil
}

// Get returns the membership row for (teamID, userID).
func (r *repository) Get(ctx context.Context, teamID, userID string) (*membershipModel.Membership, error) {
	var m membershipModel.Membership
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		First(&m).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, membershipModel.ErrMemberNotFound
		}
		return nil, err
	}

	return &m, nil
}

// CountAccepted returns the number of accepted members of a team.
func (r *repository) CountAccepted(ctx context.Context, teamID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&membershipModel.Membership{}).
		Where("team_id = ? AND status = ?", teamID, membershipModel.StatusAccepted).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ListByTeam returns all members of a team ordered by join time.
func (r *repository) ListByTeam(ctx context.Context, teamID string) ([]membershipModel.MemberView, error) {
	var members []membershipModel.MemberView

	err := r.db.WithContext(ctx).
		Table("memberships").
		Select("user_id, role, status, joined_at").
		Where("team_id = ?", teamID).
		Order("joined_at ASC").
		Scan(&members).Error

	if err != nil {
		return nil, err
	}

	if members == nil {
		return []membershipModel.MemberView{}, nil
	}

	return members, nil
}

// AcceptPending flips a pending membership to accepted under a capacity guard.
//
// The guard is part of the UPDATE itself so that check and mutation are a
// single statement; the caller additionally serializes same-team mutations
// by write-locking the team row in the surrounding transaction.
func (r *repository) AcceptPending(ctx context.Context, teamID, userID string, maxAccepted int) error {
	res := r.db.WithContext(ctx).Exec(
		`UPDATE memberships SET status = ?
		 WHERE team_id = ? AND user_id = ? AND status = ?
		   AND (SELECT COUNT(*) FROM memberships m
		        WHERE m.team_id = ? AND m.status = ?) < ?`,
		membershipModel.StatusAccepted,
		teamID, userID, membershipModel.StatusPending,
		teamID, membershipModel.StatusAccepted, maxAccepted,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// Nothing updated: either the pending row is missing or the team is full.
	m, err := r.Get(ctx, teamID, userID)
	if err != nil {
		return err
	}
	if m.Status != membershipModel.StatusPending {
		return membershipModel.ErrMemberNotFound
	}
	return membershipModel.ErrTeamFull
}

// DeletePending deletes a pending row for (teamID, userID).
func (r *repository) DeletePending(ctx context.Context, teamID, userID string) error {
	res := r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ? AND status = ?", teamID, userID, membershipModel.StatusPending).
		Delete(&membershipModel.Membership{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return membershipModel.ErrMemberNotFound
	}
	return nil
}

// DeletePendingByUser deletes the caller's pending row, wherever it is.
func (r *repository) DeletePendingByUser(ctx context.Context, userID string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, membershipModel.StatusPending).
		Delete(&membershipModel.Membership{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return membershipModel.ErrNoPendingRequest
	}
	return nil
}

// DeleteMember deletes an accepted non-leader membership row.
func (r *repository) DeleteMember(ctx context.Context, teamID, userID string) error {
	res := r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ? AND status = ? AND role = ?",
			teamID, userID, membershipModel.StatusAccepted, membershipModel.RoleMember).
		Delete(&membershipModel.Membership{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return membershipModel.ErrMemberNotFound
	}
	return nil
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
