package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard.app/server/common/logger"
	"taskboard.app/server/internal/model"
	"taskboard.app/server/internal/service"
)

const (
	userKey  = "auth_user"
	tokenKey = "auth_session_token"
)

// RequireAuth validates the session cookie and attaches the authenticated
// user to the gin context. Requests without a valid session get a 401.
func RequireAuth(auth service.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		user, err := auth.ValidateSession(c.Request.Context(), token)
		if err != nil {
			slog.DebugContext(c.Request.Context(), "session validation failed", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
			ActorID: logger.Ptr(user.ID),
		})
		c.Request = c.Request.WithContext(ctx)

		c.Set(userKey, user)
		c.Set(tokenKey, token)
		c.Next()
	}
}

// GetUser returns the authenticated user set by RequireAuth.
func GetUser(c *gin.Context) *model.User {
	if v, ok := c.Get(userKey); ok {
		if user, ok := v.(*model.User); ok {
			return user
		}
	}
	return nil
}

// GetSessionToken returns the session token set by RequireAuth.
func GetSessionToken(c *gin.Context) string {
	if v, ok := c.Get(tokenKey); ok {
		if token, ok := v.(string); ok {
			return token
		}
	}
	return ""
}
