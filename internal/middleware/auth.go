// Package middleware provides HTTP middleware functions.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hackfest/teams/internal/auth"
)

// ContextUserIDKey is the gin context key under which the authenticated
// caller's user id is stored.
const ContextUserIDKey = "user_id"

// Auth returns a middleware that requires a valid bearer token and stores
// the caller's user id in the request context.
func Auth(cfg auth.Config, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			unauthenticated(c, "authorization header is required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthenticated(c, "authorization header must be a bearer token")
			return
		}

		claims, err := auth.ParseToken(cfg, parts[1])
		if err != nil {
			logger.Debugw("token rejected", "error", err, "path", c.Request.URL.Path)
			unauthenticated(c, "invalid or expired token")
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

// CallerID returns the authenticated user id from the request context,
// or an empty string if the request is unauthenticated.
func CallerID(c *gin.Context) string {
	return c.GetString(ContextUserIDKey)
}

func unauthenticated(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "UNAUTHENTICATED",
			"message": message,
		},
	})
}
