package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_KEY", "test_value")
	assert.Equal(t, "test_value", GetEnv("TEST_KEY", "default"))
	assert.Equal(t, "default", GetEnv("TEST_KEY_MISSING", "default"))

	t.Setenv("TEST_KEY_EMPTY", "")
	assert.Equal(t, "default", GetEnv("TEST_KEY_EMPTY", "default"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	assert.Equal(t, 42, GetEnvInt("TEST_INT", 0))

	t.Setenv("TEST_INT_NEG", "-10")
	assert.Equal(t, -10, GetEnvInt("TEST_INT_NEG", 0))

	t.Setenv("TEST_INT_INVALID", "not_a_number")
	assert.Equal(t, 10, GetEnvInt("TEST_INT_INVALID", 10))

	assert.Equal(t, 5, GetEnvInt("TEST_INT_MISSING", 5))
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	assert.True(t, GetEnvBool("TEST_BOOL", false))

	t.Setenv("TEST_BOOL_NUM", "1")
	assert.True(t, GetEnvBool("TEST_BOOL_NUM", false))

	t.Setenv("TEST_BOOL_OFF", "false")
	assert.False(t, GetEnvBool("TEST_BOOL_OFF", true))

	t.Setenv("TEST_BOOL_INVALID", "maybe")
	assert.True(t, GetEnvBool("TEST_BOOL_INVALID", true))

	assert.False(t, GetEnvBool("TEST_BOOL_MISSING", false))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "30s")
	assert.Equal(t, 30*time.Second, GetEnvDuration("TEST_DURATION", 10*time.Second))

	t.Setenv("TEST_DURATION_COMPLEX", "1h30m15s")
	assert.Equal(t, 1*time.Hour+30*time.Minute+15*time.Second,
		GetEnvDuration("TEST_DURATION_COMPLEX", time.Second))

	t.Setenv("TEST_DURATION_INVALID", "soon")
	assert.Equal(t, 5*time.Second, GetEnvDuration("TEST_DURATION_INVALID", 5*time.Second))

	assert.Equal(t, time.Minute, GetEnvDuration("TEST_DURATION_MISSING", time.Minute))
}
