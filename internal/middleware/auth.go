package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sentagsite/internal/backend"
	"sentagsite/internal/pkg/logger"
	"sentagsite/internal/pkg/response"
)

// SessionVerifier checks a bearer token against the remote auth function.
type SessionVerifier interface {
	VerifySession(ctx context.Context, token string) (*backend.AdminUser, error)
}

// AdminAuth guards the back-office routes. The token is opaque here; the
// remote auth function owns it, this middleware only forwards and caches
// the resolved user on the context.
func AdminAuth(api SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid authorization header")
			c.Abort()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		user, err := api.VerifySession(c.Request.Context(), token)
		if err != nil {
			var be *backend.Error
			if errors.As(err, &be) && be.Status == http.StatusUnauthorized {
				response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Session expired or invalid")
				c.Abort()
				return
			}
			logger.Warnf("auth: session check failed: %v", err)
			response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", "Could not verify the session")
			c.Abort()
			return
		}
		if !user.IsActive {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Account is deactivated")
			c.Abort()
			return
		}

		c.Set("admin_token", token)
		c.Set("admin_user", user)
		c.Next()
	}
}

// RequireAdminRole allows only users whose role is "admin". Must run
// after AdminAuth.
func RequireAdminRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := c.MustGet("admin_user").(*backend.AdminUser)
		if !ok || user.Role != "admin" {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin role required")
			c.Abort()
			return
		}
		c.Next()
	}
}
