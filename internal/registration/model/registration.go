package model

import "time"

// EventRegistration represents a team's registration for an event.
// Matches the event_registrations table schema; the unique index on
// (event_id, team_id) is the duplicate-registration race barrier.
type EventRegistration struct {
	ID           string            `gorm:"primaryKey;column:id;type:uuid"                                                       json:"id"`
	EventID      string            `gorm:"column:event_id;type:uuid;not null;uniqueIndex:idx_event_registrations_event_team"    json:"event_id"`
	TeamID       string            `gorm:"column:team_id;type:uuid;not null;uniqueIndex:idx_event_registrations_event_team"     json:"team_id"`
	SubmittedBy  string            `gorm:"column:submitted_by;type:varchar(255);not null"                                       json:"submitted_by"`
	Fields       map[string]string `gorm:"column:fields;type:text;serializer:json"                                              json:"fields"`
	RegisteredAt time.Time         `gorm:"column:registered_at;type:timestamptz;not null;default:now()"                         json:"registered_at"`
}

// TableName specifies the table name for GORM.
func (EventRegistration) TableName() string {
	return "event_registrations"
}
