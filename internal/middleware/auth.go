package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"team-portal/internal/config"
	appErrors "team-portal/pkg/errors"
	"team-portal/pkg/utils"
)

// SessionCookieName is the cookie the login handler sets and the
// browser sends back on every portal request.
const SessionCookieName = "token"

// AuthMiddleware authenticates the request from the session cookie,
// falling back to an Authorization bearer header for non-browser
// clients. A missing credential is 401; a credential that is present
// but expired or tampered with is 403.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		claims, err := utils.ValidateSessionToken(token, cfg.JWT.Secret)
		if err != nil {
			message := "Invalid token"
			if err == appErrors.ErrTokenExpired {
				message = "Session expired, please log in again"
			}
			utils.ErrorResponse(c, http.StatusForbidden, message)
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("name", claims.Name)
		c.Set("role", claims.Role)

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// ActorID returns the authenticated user's ID from the Gin context.
func ActorID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}

// ActorRole returns the authenticated user's role from the Gin context.
func ActorRole(c *gin.Context) string {
	if value, exists := c.Get("role"); exists {
		if role, ok := value.(string); ok {
			return role
		}
	}
	return ""
}
