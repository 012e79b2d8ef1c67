// Package auth provides JWT token issuing and verification for caller identity.
//
// Identity provisioning (signup, login) lives outside this service; callers
// arrive with a bearer token whose subject is their opaque user id.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	appConfig "github.com/hackfest/teams/internal/config"
)

// ErrInvalidToken indicates the token failed parsing or signature verification.
var ErrInvalidToken = errors.New("invalid token")

// Config holds token verification configuration.
type Config struct {
	// Secret is the HS256 signing secret shared with the identity provider.
	Secret string
	// TTL is the validity window applied to tokens issued by this service
	// (test tooling and local development only).
	TTL time.Duration
}

// LoadConfigFromEnv loads auth configuration from environment variables.
func LoadConfigFromEnv() Config {
	return Config{
		Secret: appConfig.GetEnv("JWT_SECRET", "dev-secret-change-me"),
		TTL:    appConfig.GetEnvDuration("JWT_TTL", 7*24*time.Hour),
	}
}

// Validate validates auth configuration.
func (c Config) Validate() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.TTL <= 0 {
		return fmt.Errorf("JWT_TTL must be greater than 0")
	}
	return nil
}

// Claims are the JWT claims carried by a caller's bearer token.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// IssueToken signs a token for the given user id.
func IssueToken(cfg Config, userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ParseToken verifies a token string and returns its claims.
func ParseToken(cfg Config, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
