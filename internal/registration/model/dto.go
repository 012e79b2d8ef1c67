// Package model provides domain models and DTOs for the registration module.
package model

import (
	"time"

	"github.com/hackfest/teams/internal/eligibility"
)

// RegisterRequest represents the request to register a team for an event.
type RegisterRequest struct {
	TeamID string            `json:"team_id" binding:"required"`
	Fields map[string]string `json:"fields"`
}

// RegistrationResponse represents a persisted registration in API responses.
type RegistrationResponse struct {
	ID           string             `json:"id"`
	EventID      string             `json:"event_id"`
	TeamID       string             `json:"team_id"`
	SubmittedBy  string             `json:"submitted_by"`
	Fields       map[string]string  `json:"fields"`
	Eligibility  eligibility.Result `json:"eligibility"`
	RegisteredAt time.Time          `json:"registered_at"`
}
