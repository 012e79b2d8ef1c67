// Package service provides business logic layer for the team module.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hackfest/teams/internal/config"
	membershipModel "github.com/hackfest/teams/internal/membership/model"
	membershipRepository "github.com/hackfest/teams/internal/membership/repository"
	teamModel "github.com/hackfest/teams/internal/team/model"
	"github.com/hackfest/teams/internal/team/repository"
	"github.com/hackfest/teams/pkg/teamcode"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// Create creates a team led by the caller, with a fresh unique join code.
	Create(ctx context.Context, callerID string, req *teamModel.CreateTeamRequest) (*teamModel.TeamResponse, error)

	// Get returns a team with its members.
	Get(ctx context.Context, teamID string) (*teamModel.TeamResponse, error)

	// Rename updates the team's display name. Leader-only, and only while the
	// team holds no event registration.
	Rename(ctx context.Context, callerID, teamID string, req *teamModel.RenameTeamRequest) (*teamModel.TeamResponse, error)
}

type service struct {
	repo    repository.Repository
	members membershipRepository.Repository
	db      *gorm.DB
	cfg     config.TeamConfig
	logger  *zap.SugaredLogger
}

// New creates a new team service instance.
func New(
	repo repository.Repository,
	members membershipRepository.Repository,
	db *gorm.DB,
	cfg config.TeamConfig,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:    repo,
		members: members,
		db:      db,
		cfg:     cfg,
		logger:  logger,
	}
}

// Create creates a team and the leader's own accepted membership atomically.
func (s *service) Create(
	ctx context.Context,
	callerID string,
	req *teamModel.CreateTeamRequest,
) (*teamModel.TeamResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, teamModel.ErrInvalidTeamName
	}

	var result *teamModel.TeamResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txTeams := repository.New(tx)
		txMembers := membershipRepository.New(tx)

		// Pre-check; the unique index on memberships.user_id is the final
		// authority if a concurrent request slips past this read.
		_, err := txMembers.GetByUser(ctx, callerID)
		if err == nil {
			return teamModel.ErrAlreadyHasActiveTeam
		}
		if !errors.Is(err, membershipModel.ErrMemberNotFound) {
			return err
		}

		team, err := s.createWithFreshCode(ctx, txTeams, callerID, name)
		if err != nil {
			return err
		}

		leader := &membershipModel.Membership{
			TeamID:   team.ID,
			UserID:   callerID,
			Role:     membershipModel.RoleLeader,
			Status:   membershipModel.StatusAccepted,
			JoinedAt: time.Now(),
		}
		if err := txMembers.Create(ctx, leader); err != nil {
			if errors.Is(err, membershipModel.ErrAlreadyInAnotherTeam) {
				return teamModel.ErrAlreadyHasActiveTeam
			}
			return err
		}

		members, err := txMembers.ListByTeam(ctx, team.ID)
		if err != nil {
			return err
		}

		result = toResponse(team, members)
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Infow("team created", "team_id", result.ID, "leader_id", callerID)
	return result, nil
}

// createWithFreshCode inserts the team, regenerating the join code on
// collision up to the configured retry budget.
func (s *service) createWithFreshCode(
	ctx context.Context,
	txTeams repository.Repository,
	callerID, name string,
) (*teamModel.Team, error) {
	for attempt := 0; attempt < s.cfg.CodeAttempts; attempt++ {
		team := &teamModel.Team{
			ID:       uuid.NewString(),
			Name:     name,
			Code:     teamcode.Generate(s.cfg.CodeLength),
			LeaderID: callerID,
		}

		err := txTeams.Create(ctx, team)
		if err == nil {
			return team, nil
		}
		if !errors.Is(err, teamModel.ErrCodeTaken) {
			return nil, err
		}
		s.logger.Warnw("join code collision, retrying", "attempt", attempt+1)
	}
	return nil, teamModel.ErrCodeGenerationFailed
}

// Get returns a team with its members.
func (s *service) Get(ctx context.Context, teamID string) (*teamModel.TeamResponse, error) {
	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	members, err := s.members.ListByTeam(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	return toResponse(team, members), nil
}

// Rename updates the team's display name.
func (s *service) Rename(
	ctx context.Context,
	callerID, teamID string,
	req *teamModel.RenameTeamRequest,
) (*teamModel.TeamResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, teamModel.ErrInvalidTeamName
	}

	var result *teamModel.TeamResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txTeams := repository.New(tx)
		txMembers := membershipRepository.New(tx)

		team, err := txTeams.GetByID(ctx, teamID)
		if err != nil {
			return err
		}
		if team.LeaderID != callerID {
			return teamModel.ErrOnlyLeaderCanRename
		}

		registrations, err := txTeams.CountRegistrations(ctx, teamID)
		if err != nil {
			return err
		}
		if registrations > 0 {
			return teamModel.ErrTeamAlreadyRegistered
		}

		if err := txTeams.UpdateName(ctx, teamID, name); err != nil {
			return err
		}

		team.Name = name
		members, err := txMembers.ListByTeam(ctx, teamID)
		if err != nil {
			return err
		}

		result = toResponse(team, members)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

func toResponse(team *teamModel.Team, members []membershipModel.MemberView) *teamModel.TeamResponse {
	return &teamModel.TeamResponse{
		ID:       team.ID,
		Name:     team.Name,
		Code:     team.Code,
		LeaderID: team.LeaderID,
		Members:  members,
	}
}
