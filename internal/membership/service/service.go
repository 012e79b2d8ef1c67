// Package service provides business logic layer for the membership ledger
// and approval workflow.
package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hackfest/teams/internal/config"
	"github.com/hackfest/teams/internal/eligibility"
	eventModel "github.com/hackfest/teams/internal/event/model"
	eventRepository "github.com/hackfest/teams/internal/event/repository"
	membershipModel "github.com/hackfest/teams/internal/membership/model"
	"github.com/hackfest/teams/internal/membership/repository"
	teamModel "github.com/hackfest/teams/internal/team/model"
	teamRepository "github.com/hackfest/teams/internal/team/repository"
	"github.com/hackfest/teams/pkg/teamcode"
)

// Service defines the interface for membership business logic operations.
type Service interface {
	// RequestJoin files a pending join request against the team behind a code.
	RequestJoin(ctx context.Context, callerID, code string) (*membershipModel.JoinResponse, error)

	// CancelJoin withdraws the caller's pending join request.
	CancelJoin(ctx context.Context, callerID string) error

	// Approve flips a pending membership to accepted. Leader-only.
	Approve(ctx context.Context, callerID, teamID, userID string) (*membershipModel.MemberView, error)

	// Reject deletes a pending membership. Leader-only.
	Reject(ctx context.Context, callerID, teamID, userID string) error

	// Remove deletes an accepted non-leader membership. Leader-only.
	Remove(ctx context.Context, callerID, teamID, userID string) error

	// Leave deletes the caller's own accepted non-leader membership.
	Leave(ctx context.Context, callerID string) error

	// MyStatus reports the caller's current team standing; when eventID is
	// non-empty the response includes eligibility against that event.
	MyStatus(ctx context.Context, callerID, eventID string) (*membershipModel.MyStatusResponse, error)
}

type service struct {
	repo   repository.Repository
	teams  teamRepository.Repository
	events eventRepository.Repository
	db     *gorm.DB
	cfg    config.TeamConfig
	logger *zap.SugaredLogger
}

// New creates a new membership service instance.
func New(
	repo repository.Repository,
	teams teamRepository.Repository,
	events eventRepository.Repository,
	db *gorm.DB,
	cfg config.TeamConfig,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:   repo,
		teams:  teams,
		events: events,
		db:     db,
		cfg:    cfg,
		logger: logger,
	}
}

// RequestJoin files a pending join request.
func (s *service) RequestJoin(
	ctx context.Context,
	callerID, code string,
) (*membershipModel.JoinResponse, error) {
	normalized := teamcode.Normalize(code)
	if len(normalized) < s.cfg.CodeLength {
		return nil, membershipModel.ErrCodeInvalid
	}

	var result *membershipModel.JoinResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txTeams := teamRepository.New(tx)
		txMembers := repository.New(tx)

		team, err := txTeams.GetByCode(ctx, normalized)
		if err != nil {
			if errors.Is(err, teamModel.ErrTeamNotFound) {
				return membershipModel.ErrTeamNotFound
			}
			return err
		}

		if team.LeaderID == callerID {
			return membershipModel.ErrCannotJoinOwnTeam
		}

		existing, err := txMembers.GetByUser(ctx, callerID)
		if err == nil {
			if existing.TeamID == team.ID {
				return membershipModel.ErrAlreadyInTeam
			}
			return membershipModel.ErrAlreadyInAnotherTeam
		}
		if !errors.Is(err, membershipModel.ErrMemberNotFound) {
			return err
		}

		// Pre-check only; the approve step is the final capacity authority.
		accepted, err := txMembers.CountAccepted(ctx, team.ID)
		if err != nil {
			return err
		}
		if accepted >= int64(s.cfg.MaxSize) {
			return membershipModel.ErrTeamFull
		}

		pending := &membershipModel.Membership{
			TeamID:   team.ID,
			UserID:   callerID,
			Role:     membershipModel.RoleMember,
			Status:   membershipModel.StatusPending,
			JoinedAt: time.Now(),
		}
		if err := txMembers.Create(ctx, pending); err != nil {
			return err
		}

		result = &membershipModel.JoinResponse{
			TeamID:   team.ID,
			TeamName: team.Name,
			Status:   membershipModel.StatusPending,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Infow("join requested", "team_id", result.TeamID, "user_id", callerID)
	return result, nil
}

// CancelJoin withdraws the caller's pending join request.
func (s *service) CancelJoin(ctx context.Context, callerID string) error {
	return s.repo.DeletePendingByUser(ctx, callerID)
}

// Approve flips a pending membership to accepted.
//
// The team row is write-locked first so that concurrent approvals (and the
// registration gate's eligibility read) on the same team serialize; the
// capacity guard inside AcceptPending then decides within that order.
func (s *service) Approve(
	ctx context.Context,
	callerID, teamID, userID string,
) (*membershipModel.MemberView, error) {
	var result *membershipModel.MemberView
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txTeams := teamRepository.New(tx)
		txMembers := repository.New(tx)

		team, err := s.requireLeader(ctx, txTeams, callerID, teamID, membershipModel.ErrOnlyLeaderCanApprove)
		if err != nil {
			return err
		}

		if err := txTeams.Touch(ctx, team.ID); err != nil {
			return err
		}

		if err := txMembers.AcceptPending(ctx, teamID, userID, s.cfg.MaxSize); err != nil {
			return err
		}

		m, err := txMembers.Get(ctx, teamID, userID)
		if err != nil {
			return err
		}
		result = &membershipModel.MemberView{
			UserID:   m.UserID,
			Role:     m.Role,
			Status:   m.Status,
			JoinedAt: m.JoinedAt,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Infow("member approved", "team_id", teamID, "user_id", userID)
	return result, nil
}

// Reject deletes a pending membership, freeing the slot.
func (s *service) Reject(ctx context.Context, callerID, teamID, userID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txTeams := teamRepository.New(tx)
		txMembers := repository.New(tx)

		if _, err := s.requireLeader(ctx, txTeams, callerID, teamID, membershipModel.ErrOnlyLeaderCanApprove); err != nil {
			return err
		}

		return txMembers.DeletePending(ctx, teamID, userID)
	})
}

// Remove deletes an accepted non-leader membership.
func (s *service) Remove(ctx context.Context, callerID, teamID, userID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txTeams := teamRepository.New(tx)
		txMembers := repository.New(tx)

		team, err := s.requireLeader(ctx, txTeams, callerID, teamID, membershipModel.ErrOnlyLeaderCanRemove)
		if err != nil {
			return err
		}

		if userID == callerID {
			return membershipModel.ErrCannotRemoveYourself
		}

		if err := txTeams.Touch(ctx, team.ID); err != nil {
			return err
		}

		return txMembers.DeleteMember(ctx, teamID, userID)
	})
}

// Leave deletes the caller's own membership. Leaders have no supported path
// out of their team; they are rejected with ErrLeaderCannotLeave.
func (s *service) Leave(ctx context.Context, callerID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txTeams := teamRepository.New(tx)
		txMembers := repository.New(tx)

		m, err := txMembers.GetByUser(ctx, callerID)
		if err != nil {
			if errors.Is(err, membershipModel.ErrMemberNotFound) {
				return membershipModel.ErrNotAMember
			}
			return err
		}
		if m.Role == membershipModel.RoleLeader {
			return membershipModel.ErrLeaderCannotLeave
		}
		if m.Status != membershipModel.StatusAccepted {
			return membershipModel.ErrNotAMember
		}

		if err := txTeams.Touch(ctx, m.TeamID); err != nil {
			return err
		}

		return txMembers.DeleteMember(ctx, m.TeamID, callerID)
	})
}

// MyStatus reports the caller's current team standing.
func (s *service) MyStatus(
	ctx context.Context,
	callerID, eventID string,
) (*membershipModel.MyStatusResponse, error) {
	m, err := s.repo.GetByUser(ctx, callerID)
	if err != nil {
		if errors.Is(err, membershipModel.ErrMemberNotFound) {
			return &membershipModel.MyStatusResponse{Status: membershipModel.MyStatusNone}, nil
		}
		return nil, err
	}

	team, err := s.teams.GetByID(ctx, m.TeamID)
	if err != nil {
		return nil, err
	}
	teamView := &membershipModel.TeamView{
		ID:       team.ID,
		Name:     team.Name,
		Code:     team.Code,
		LeaderID: team.LeaderID,
	}

	if m.Status == membershipModel.StatusPending {
		return &membershipModel.MyStatusResponse{
			Status: membershipModel.MyStatusPending,
			Team:   teamView,
		}, nil
	}

	members, err := s.repo.ListByTeam(ctx, m.TeamID)
	if err != nil {
		return nil, err
	}

	resp := &membershipModel.MyStatusResponse{
		Status:  membershipModel.MyStatusAccepted,
		Team:    teamView,
		Members: members,
	}

	if eventID != "" {
		event, err := s.events.GetByID(ctx, eventID)
		if err != nil {
			if errors.Is(err, eventModel.ErrEventNotFound) {
				return nil, membershipModel.ErrEventNotFound
			}
			return nil, err
		}
		accepted, err := s.repo.CountAccepted(ctx, m.TeamID)
		if err != nil {
			return nil, err
		}
		result := eligibility.Evaluate(int(accepted), event.MinTeamSize, event.MaxTeamSize)
		resp.Eligibility = &result
	}

	return resp, nil
}

// requireLeader loads the team and verifies the caller leads it.
func (s *service) requireLeader(
	ctx context.Context,
	txTeams teamRepository.Repository,
	callerID, teamID string,
	authErr error,
) (*teamModel.Team, error) {
	team, err := txTeams.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			return nil, membershipModel.ErrTeamNotFound
		}
		return nil, err
	}
	if team.LeaderID != callerID {
		return nil, authErr
	}
	return team, nil
}
