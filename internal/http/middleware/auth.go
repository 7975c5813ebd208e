package middleware

import (
	"net/http"
	"strings"

	"tripbuilder/internal/domain"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey   = "userID"
	userRoleKey = "userRole"

	// SessionCookie carries the session token for browser clients.
	SessionCookie = "session"
)

// Authenticator turns a raw session token into the caller identity.
type Authenticator interface {
	Authenticate(raw string) (domain.RequestContext, error)
}

// RequireAuth rejects requests without a valid session token. The token is
// read from "Authorization: Bearer" first, then from the session cookie.
func RequireAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := tokenFromRequest(c)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "login required",
				"request_id": GetRequestID(c),
			})
			return
		}
		rc, err := auth.Authenticate(raw)
		if err == nil && !rc.Authenticated() {
			err = domain.UnauthorizedError{Msg: "invalid session token"}
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      err.Error(),
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Set(userIDKey, rc.UserID)
		c.Set(userRoleKey, rc.Role)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if h := strings.TrimSpace(c.GetHeader("Authorization")); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	if v, err := c.Cookie(SessionCookie); err == nil {
		return strings.TrimSpace(v)
	}
	return ""
}

// GetUserID returns the authenticated user id, or 0.
func GetUserID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}

// GetRequestContext returns the authenticated caller set by RequireAuth.
func GetRequestContext(c *gin.Context) domain.RequestContext {
	return domain.RequestContext{
		UserID: c.GetInt64(userIDKey),
		Role:   c.GetString(userRoleKey),
	}
}
