// Package retry reruns an operation after transient failures, backing off
// exponentially between attempts.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"
)

// ErrNoAttempts is returned when the schedule allows zero attempts.
var ErrNoAttempts = errors.New("retry: MaxAttempts must be at least 1")

// Config controls the retry schedule.
type Config struct {
	// MaxAttempts counts the initial attempt too.
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	// Transient lists lowercase substrings of error messages worth
	// retrying. Empty means every error is retried.
	Transient []string
}

// DefaultConfig retries up to five times, starting at one second and
// doubling to a 30 second cap.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  5,
		InitialDelay: time.Second,
		MaxDelay:     30 * time.Second,
		Multiplier:   2,
	}
}

// PostgresConfig is DefaultConfig restricted to the failure modes a
// PostgreSQL server emits while starting up or shedding connections.
func PostgresConfig() Config {
	cfg := DefaultConfig()
	cfg.Transient = []string{
		"connection refused",
		"connection reset",
		"connection timed out",
		"server closed the connection",
		"too many connections",
		"database system is starting up",
		"no connection could be made",
		"network is unreachable",
		"i/o timeout",
		"dial tcp",
	}
	return cfg
}

// Do runs fn until it succeeds, the schedule is exhausted, or ctx ends.
func Do(ctx context.Context, cfg Config, fn func() error) error {
	_, err := DoWithResult(ctx, cfg, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// DoWithResult is Do for operations that produce a value.
func DoWithResult[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	var zero T
	if cfg.MaxAttempts < 1 {
		return zero, ErrNoAttempts
	}

	delay := cfg.InitialDelay
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		if !cfg.transient(err) || attempt == cfg.MaxAttempts {
			return zero, err
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(jitter(delay)):
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
}

func (cfg Config) transient(err error) bool {
	if len(cfg.Transient) == 0 {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, pattern := range cfg.Transient {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// jitter spreads a delay by up to 10% either way so restarting replicas
// do not reconnect in lockstep.
func jitter(d time.Duration) time.Duration {
	return d + time.Duration(float64(d)*0.1*(rand.Float64()*2-1))
}
