package middleware

import (
	"net/http"
	"strings"

	"github.com/yourorg/stocksnap/internal/auth"
	"github.com/yourorg/stocksnap/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionAuth requires a bearer token issued for the current session. A
// missing or stale token is answered with 401 "login required", the HTTP
// form of the login prompt.
func SessionAuth(issuer *auth.TokenIssuer, sessions *service.SessionService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}

		// Check if it's a Bearer token
		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || headerParts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format"})
			return
		}

		sessionID, err := issuer.Validate(headerParts[1])
		if err != nil {
			logger.Debug("token validation failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}

		current := sessions.Current()
		if current == nil || current.ID != sessionID {
			logger.Debug("token does not match the active session", zap.String("session_id", sessionID))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}

		c.Set("sessionID", sessionID)
		c.Next()
	}
}
