package config

import "fmt"

// TeamConfig holds team sizing and join-code configuration.
type TeamConfig struct {
	// MinSize is the minimum accepted-member count required to register for an event
	// when the event record does not override it.
	MinSize int
	// MaxSize is the maximum accepted-member count a team may ever reach.
	MaxSize int
	// CodeLength is the length of generated join codes, and the minimum
	// length accepted on join requests.
	CodeLength int
	// CodeAttempts is the number of code generation retries before giving up
	// on a collision streak.
	CodeAttempts int
}

// LoadTeamConfigFromEnv loads team configuration from environment variables.
func LoadTeamConfigFromEnv() TeamConfig {
	return TeamConfig{
		MinSize:      GetEnvInt("TEAM_MIN_SIZE", 2),
		MaxSize:      GetEnvInt("TEAM_MAX_SIZE", 4),
		CodeLength:   GetEnvInt("TEAM_CODE_LENGTH", 6),
		CodeAttempts: GetEnvInt("TEAM_CODE_ATTEMPTS", 5),
	}
}

// Validate validates team configuration.
func (c TeamConfig) Validate() error {
	if c.MinSize < 1 {
		return fmt.Errorf("TEAM_MIN_SIZE must be at least 1, got %d", c.MinSize)
	}
	if c.MaxSize < c.MinSize {
		return fmt.Errorf("TEAM_MAX_SIZE (%d) must be >= TEAM_MIN_SIZE (%d)", c.MaxSize, c.MinSize)
	}
	if c.CodeLength < 4 {
		return fmt.Errorf("TEAM_CODE_LENGTH must be at least 4, got %d", c.CodeLength)
	}
	if c.CodeAttempts < 1 {
		return fmt.Errorf("TEAM_CODE_ATTEMPTS must be at least 1, got %d", c.CodeAttempts)
	}
	return nil
}
