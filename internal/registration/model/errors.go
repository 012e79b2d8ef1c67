package model

import "errors"

var (
	// ErrEventNotFound indicates that the target event does not exist.
	ErrEventNotFound = errors.New("event not found")
	// ErrNotAcceptedMember indicates the caller holds no accepted membership in the team.
	ErrNotAcceptedMember = errors.New("caller is not an accepted member of the team")
	// ErrNotEligible indicates the team's size is outside the event's bounds.
	ErrNotEligible = errors.New("team is not eligible for the event")
	// ErrAlreadyRegistered indicates a registration already exists for (event, team).
	ErrAlreadyRegistered = errors.New("team is already registered for the event")
	// ErrMissingRequiredField indicates a required submission field is absent or blank.
	ErrMissingRequiredField = errors.New("missing required submission field")
)
