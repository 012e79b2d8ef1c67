// Package model provides domain models for the event module.
package model

import (
	"errors"
	"time"
)

// Event is a per-event configuration record: team size bounds and the
// submission fields the registration gate requires. Constraints are looked
// up by id, never inferred from the event's display name.
type Event struct {
	ID             string    `gorm:"primaryKey;column:id;type:uuid"                            json:"id"`
	Name           string    `gorm:"column:name;type:varchar(255);not null"                    json:"name"`
	MinTeamSize    int       `gorm:"column:min_team_size;not null;default:2"                   json:"min_team_size"`
	MaxTeamSize    int       `gorm:"column:max_team_size;not null;default:4"                   json:"max_team_size"`
	RequiredFields []string  `gorm:"column:required_fields;type:text;serializer:json"          json:"required_fields"`
	CreatedAt      time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Event) TableName() string {
	return "events"
}

// ErrEventNotFound indicates that the requested event does not exist.
var ErrEventNotFound = errors.New("event not found")
