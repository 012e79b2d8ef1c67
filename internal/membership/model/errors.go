package model

import "errors"

var (
	// ErrCodeInvalid indicates a malformed or too-short join code.
	ErrCodeInvalid = errors.New("join code is invalid")
	// ErrTeamNotFound indicates that no team matches the given code or id.
	ErrTeamNotFound = errors.New("team not found")
	// ErrCannotJoinOwnTeam indicates the caller leads the team they tried to join.
	ErrCannotJoinOwnTeam = errors.New("cannot join own team")
	// ErrAlreadyInTeam indicates the caller already holds an active membership in this team.
	ErrAlreadyInTeam = errors.New("already in this team or pending approval")
	// ErrAlreadyInAnotherTeam indicates the caller already holds an active membership elsewhere.
	ErrAlreadyInAnotherTeam = errors.New("already in another team")
	// ErrTeamFull indicates the team's accepted-member count is at the configured maximum.
	ErrTeamFull = errors.New("team is full")
	// ErrNoPendingRequest indicates the caller has no pending join request to cancel.
	ErrNoPendingRequest = errors.New("no pending join request")
	// ErrOnlyLeaderCanApprove indicates a non-leader attempted an approval-workflow transition.
	ErrOnlyLeaderCanApprove = errors.New("only the team leader can approve or reject requests")
	// ErrOnlyLeaderCanRemove indicates a non-leader attempted to remove a member.
	ErrOnlyLeaderCanRemove = errors.New("only the team leader can remove members")
	// ErrMemberNotFound indicates the target membership does not exist in the required state.
	ErrMemberNotFound = errors.New("member not found")
	// ErrCannotRemoveYourself indicates the leader attempted to remove their own membership.
	ErrCannotRemoveYourself = errors.New("cannot remove yourself")
	// ErrNotAMember indicates the caller holds no accepted membership.
	ErrNotAMember = errors.New("not a member of any team")
	// ErrLeaderCannotLeave indicates the leader attempted to leave their team.
	ErrLeaderCannotLeave = errors.New("the team leader cannot leave the team")
	// ErrEventNotFound indicates the event referenced for eligibility does not exist.
	ErrEventNotFound = errors.New("event not found")
)
