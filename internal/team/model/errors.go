package model

import "errors"

var (
	// ErrInvalidTeamName indicates that the provided team name is invalid (e.g., empty).
	ErrInvalidTeamName = errors.New("invalid team name")
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrAlreadyHasActiveTeam indicates the caller already holds an active membership.
	ErrAlreadyHasActiveTeam = errors.New("caller already has an active team")
	// ErrCodeTaken indicates a generated join code collided with an existing one.
	ErrCodeTaken = errors.New("join code already taken")
	// ErrCodeGenerationFailed indicates code generation kept colliding past the retry budget.
	ErrCodeGenerationFailed = errors.New("failed to generate a unique join code")
	// ErrOnlyLeaderCanRename indicates a non-leader attempted to rename the team.
	ErrOnlyLeaderCanRename = errors.New("only the team leader can rename the team")
	// ErrTeamAlreadyRegistered indicates the team is registered for an event and can
	// no longer be renamed.
	ErrTeamAlreadyRegistered = errors.New("team is already registered for an event")
)
