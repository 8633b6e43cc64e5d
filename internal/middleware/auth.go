package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stewartjane/packet-core/internal/pkg/jwt"
	"github.com/stewartjane/packet-core/internal/pkg/response"
)

const (
	// SessionCookie is the admin session cookie name.
	SessionCookie = "admin_session"

	contextKeyRole = "session_role"
	roleAdmin      = "admin"
)

// AdminAuth returns a middleware that gates admin routes behind a valid,
// signed session cookie. API clients may instead send the token in an
// Authorization header.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := jwt.Parse(extractToken(c))
		if err != nil || claims.Role != roleAdmin {
			response.Unauthorized(c)
			return
		}
		c.Set(contextKeyRole, claims.Role)
		c.Next()
	}
}

// IsAdmin reports whether the request carries a valid admin session.
func IsAdmin(c *gin.Context) bool {
	v, _ := c.Get(contextKeyRole)
	role, _ := v.(string)
	return role == roleAdmin
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	return normalizeToken(c.GetHeader("Authorization"))
}

// normalizeToken trims spaces and strips an optional Bearer prefix.
func normalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
