package model

import (
	"time"

	"gorm.io/gorm"
)

// Team represents a team entity in the system.
// Matches the teams table schema.
type Team struct {
	ID        string    `gorm:"primaryKey;column:id;type:uuid"                                    json:"id"`
	Name      string    `gorm:"column:name;type:varchar(100);not null"                            json:"name"`
	Code      string    `gorm:"column:code;type:varchar(16);not null;uniqueIndex:idx_teams_code"  json:"code"`
	LeaderID  string    `gorm:"column:leader_id;type:varchar(255);not null"                       json:"leader_id"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"         json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()"         json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}
