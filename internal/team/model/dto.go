// Package model provides domain models and DTOs for the team module.
package model

import (
	membershipModel "github.com/hackfest/teams/internal/membership/model"
)

// CreateTeamRequest represents the request to create a team.
type CreateTeamRequest struct {
	Name string `json:"name" binding:"required"`
}

// RenameTeamRequest represents the request to rename a team.
type RenameTeamRequest struct {
	Name string `json:"name" binding:"required"`
}

// TeamResponse represents the response after creating or getting a team.
type TeamResponse struct {
	ID       string                       `json:"id"`
	Name     string                       `json:"name"`
	Code     string                       `json:"code"`
	LeaderID string                       `json:"leader_id"`
	Members  []membershipModel.MemberView `json:"members"`
}
