package model

import "time"

// Role is the role a member holds inside a team.
type Role string

// Membership roles.
const (
	RoleLeader Role = "leader"
	RoleMember Role = "member"
)

// Status is the lifecycle stage of a membership.
//
// Rejected memberships are deleted rather than persisted, so every stored
// row is active (pending or accepted); StatusRejected exists for the wire
// contract only. This is what lets the unique index on user_id enforce
// "one active membership per user".
type Status string

// Membership statuses.
const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Membership represents a (team, user) pair in the membership ledger.
// Matches the memberships table schema.
type Membership struct {
	TeamID   string    `gorm:"primaryKey;column:team_id;type:uuid"                                              json:"team_id"`
	UserID   string    `gorm:"primaryKey;column:user_id;type:varchar(255);uniqueIndex:idx_memberships_user"     json:"user_id"`
	Role     Role      `gorm:"column:role;type:varchar(16);not null"                                            json:"role"`
	Status   Status    `gorm:"column:status;type:varchar(16);not null"                                          json:"status"`
	JoinedAt time.Time `gorm:"column:joined_at;type:timestamptz;not null;default:now()"                         json:"joined_at"`
}

// TableName specifies the table name for GORM.
func (Membership) TableName() string {
	return "memberships"
}
