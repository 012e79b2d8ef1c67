// Package model provides domain models and DTOs for the membership module.
package model

import (
	"time"

	"github.com/hackfest/teams/internal/eligibility"
)

// JoinRequest represents the request to join a team by code.
type JoinRequest struct {
	Code string `json:"code" binding:"required"`
}

// JoinResponse represents the response after a join request is filed.
type JoinResponse struct {
	TeamID   string `json:"team_id"`
	TeamName string `json:"team_name"`
	Status   Status `json:"status"`
}

// MemberView represents a single member in API responses.
type MemberView struct {
	UserID   string    `json:"user_id"`
	Role     Role      `json:"role"`
	Status   Status    `json:"status"`
	JoinedAt time.Time `json:"joined_at"`
}

// TeamView is the team summary embedded in membership responses.
type TeamView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	LeaderID string `json:"leader_id"`
}

// Membership status values reported by MyStatusResponse.Status.
const (
	MyStatusNone     = "none"
	MyStatusPending  = "pending"
	MyStatusAccepted = "accepted"
)

// MyStatusResponse represents the caller's current team standing.
// Members and Eligibility are populated only for accepted members;
// Eligibility additionally requires an event to evaluate against.
type MyStatusResponse struct {
	Status      string              `json:"status"`
	Team        *TeamView           `json:"team,omitempty"`
	Members     []MemberView        `json:"members,omitempty"`
	Eligibility *eligibility.Result `json:"eligibility,omitempty"`
}
