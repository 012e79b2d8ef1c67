package config

import (
	"os"
	"strconv"
	"time"
)

// GetEnv reads a string environment variable, falling back when unset
// or empty.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetEnvInt reads an integer environment variable. Unset or unparsable
// values fall back.
func GetEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

// GetEnvBool reads a boolean environment variable. Unset or unparsable
// values fall back.
func GetEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

// GetEnvDuration reads a duration environment variable. Unset or
// unparsable values fall back.
func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
