// Package service provides business logic layer for the event registration gate.
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hackfest/teams/internal/eligibility"
	eventModel "github.com/hackfest/teams/internal/event/model"
	eventRepository "github.com/hackfest/teams/internal/event/repository"
	membershipModel "github.com/hackfest/teams/internal/membership/model"
	membershipRepository "github.com/hackfest/teams/internal/membership/repository"
	registrationModel "github.com/hackfest/teams/internal/registration/model"
	"github.com/hackfest/teams/internal/registration/repository"
	teamRepository "github.com/hackfest/teams/internal/team/repository"
)

// Service defines the interface for registration business logic operations.
type Service interface {
	// Register validates eligibility and persists the team's registration for
	// an event. Any accepted member of the team may trigger it.
	Register(ctx context.Context, callerID, eventID string, req *registrationModel.RegisterRequest) (*registrationModel.RegistrationResponse, error)

	// ListByTeam returns all registrations held by a team.
	ListByTeam(ctx context.Context, teamID string) ([]registrationModel.RegistrationResponse, error)
}

type service struct {
	repo    repository.Repository
	events  eventRepository.Repository
	members membershipRepository.Repository
	teams   teamRepository.Repository
	db      *gorm.DB
	logger  *zap.SugaredLogger
}

// New creates a new registration service instance.
func New(
	repo repository.Repository,
	events eventRepository.Repository,
	members membershipRepository.Repository,
	teams teamRepository.Repository,
	db *gorm.DB,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:    repo,
		events:  events,
		members: members,
		teams:   teams,
		db:      db,
		logger:  logger,
	}
}

// Register validates eligibility and persists the registration.
//
// Eligibility is re-evaluated inside the transaction after write-locking the
// team row, so a concurrent leave/remove cannot slip a team under the minimum
// between the check and the insert. The (event_id, team_id) unique index
// settles concurrent duplicate registrations.
func (s *service) Register(
	ctx context.Context,
	callerID, eventID string,
	req *registrationModel.RegisterRequest,
) (*registrationModel.RegistrationResponse, error) {
	var result *registrationModel.RegistrationResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)
		txEvents := eventRepository.New(tx)
		txMembers := membershipRepository.New(tx)
		txTeams := teamRepository.New(tx)

		event, err := txEvents.GetByID(ctx, eventID)
		if err != nil {
			if errors.Is(err, eventModel.ErrEventNotFound) {
				return registrationModel.ErrEventNotFound
			}
			return err
		}

		m, err := txMembers.Get(ctx, req.TeamID, callerID)
		if err != nil || m.Status != membershipModel.StatusAccepted {
			if err != nil && !errors.Is(err, membershipModel.ErrMemberNotFound) {
				return err
			}
			return registrationModel.ErrNotAcceptedMember
		}

		if err := validateFields(event.RequiredFields, req.Fields); err != nil {
			return err
		}

		if err := txTeams.Touch(ctx, req.TeamID); err != nil {
			return err
		}

		accepted, err := txMembers.CountAccepted(ctx, req.TeamID)
		if err != nil {
			return err
		}
		check := eligibility.Evaluate(int(accepted), event.MinTeamSize, event.MaxTeamSize)
		if !check.Eligible {
			return registrationModel.ErrNotEligible
		}

		reg := &registrationModel.EventRegistration{
			ID:           uuid.NewString(),
			EventID:      eventID,
			TeamID:       req.TeamID,
			SubmittedBy:  callerID,
			Fields:       req.Fields,
			RegisteredAt: time.Now(),
		}
		if err := txRepo.Create(ctx, reg); err != nil {
			return err
		}

		result = toResponse(reg, check)
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Infow("team registered for event",
		"event_id", eventID, "team_id", req.TeamID, "submitted_by", callerID)
	return result, nil
}

// ListByTeam returns all registrations held by a team.
func (s *service) ListByTeam(ctx context.Context, teamID string) ([]registrationModel.RegistrationResponse, error) {
	regs, err := s.repo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	responses := make([]registrationModel.RegistrationResponse, 0, len(regs))
	for i := range regs {
		responses = append(responses, registrationModel.RegistrationResponse{
			ID:           regs[i].ID,
			EventID:      regs[i].EventID,
			TeamID:       regs[i].TeamID,
			SubmittedBy:  regs[i].SubmittedBy,
			Fields:       regs[i].Fields,
			RegisteredAt: regs[i].RegisteredAt,
		})
	}
	return responses, nil
}

// validateFields checks that every required submission field is present and
// non-blank. Field values are opaque here; only presence is validated.
func validateFields(required []string, fields map[string]string) error {
	missing := make([]string, 0)
	for _, key := range required {
		if strings.TrimSpace(fields[key]) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: %s", registrationModel.ErrMissingRequiredField, strings.Join(missing, ", "))
	}
	return nil
}

func toResponse(reg *registrationModel.EventRegistration, check eligibility.Result) *registrationModel.RegistrationResponse {
	return &registrationModel.RegistrationResponse{
		ID:           reg.ID,
		EventID:      reg.EventID,
		TeamID:       reg.TeamID,
		SubmittedBy:  reg.SubmittedBy,
		Fields:       reg.Fields,
		Eligibility:  check,
		RegisteredAt: reg.RegisteredAt,
	}
}
