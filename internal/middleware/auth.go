// Admin guard: the session token comes from the session cookie or Authorization: Bearer.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/connectvan/backend/internal/i18n"
	"github.com/connectvan/backend/internal/response"
)

const (
	HeaderAuthorization = "Authorization"
	BearerPrefix        = "Bearer "
	SessionCookie       = "connectvan_session"
)

// SessionChecker is satisfied by auth.Gate.
type SessionChecker interface {
	Authenticated(ctx context.Context, token string) bool
}

// SessionToken extracts the session token, preferring the cookie.
func SessionToken(c *gin.Context) string {
	if v, err := c.Cookie(SessionCookie); err == nil && v != "" {
		return v
	}
	raw := c.GetHeader(HeaderAuthorization)
	if strings.HasPrefix(raw, BearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(raw, BearerPrefix))
	}
	return ""
}

// RequireAdmin answers 401 unless the request carries a live admin session.
func RequireAdmin(sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sessions.Authenticated(c.Request.Context(), SessionToken(c)) {
			response.AbortWithError(c, http.StatusUnauthorized,
				i18n.T(c.GetString(string(ContextKeyLanguage)), "error.unauthorized"))
			return
		}
		c.Set(string(ContextKeyAdmin), true)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), ContextKeyAdmin, true))
		c.Next()
	}
}
