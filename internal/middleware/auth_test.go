package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"sentagsite/internal/backend"
)

type fakeVerifier struct {
	user *backend.AdminUser
	err  error

	gotToken string
}

func (f *fakeVerifier) VerifySession(ctx context.Context, token string) (*backend.AdminUser, error) {
	f.gotToken = token
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func router(v *fakeVerifier, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{AdminAuth(v)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		user := c.MustGet("admin_user").(*backend.AdminUser)
		c.JSON(http.StatusOK, gin.H{"email": user.Email, "token": c.GetString("admin_token")})
	})
	r.GET("/guarded", handlers...)
	return r
}

func perform(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminAuthPassesValidSession(t *testing.T) {
	v := &fakeVerifier{user: &backend.AdminUser{Email: "admin@example.com", Role: "admin", IsActive: true}}

	w := perform(router(v), "Bearer tok-1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tok-1", v.gotToken)
	assert.Contains(t, w.Body.String(), "admin@example.com")
}

func TestAdminAuthRejectsMissingHeader(t *testing.T) {
	v := &fakeVerifier{}

	w := perform(router(v), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, v.gotToken)
}

func TestAdminAuthRejectsStaleSession(t *testing.T) {
	v := &fakeVerifier{err: &backend.Error{Status: http.StatusUnauthorized, Message: "Invalid session"}}

	w := perform(router(v), "Bearer stale")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthTransportFailureIsGatewayError(t *testing.T) {
	v := &fakeVerifier{err: errors.New("connection refused")}

	w := perform(router(v), "Bearer tok-1")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestAdminAuthRejectsDeactivatedUser(t *testing.T) {
	v := &fakeVerifier{user: &backend.AdminUser{Email: "x@example.com", Role: "manager", IsActive: false}}

	w := perform(router(v), "Bearer tok-1")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdminRole(t *testing.T) {
	manager := &fakeVerifier{user: &backend.AdminUser{Email: "m@example.com", Role: "manager", IsActive: true}}
	w := perform(router(manager, RequireAdminRole()), "Bearer tok-1")
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin := &fakeVerifier{user: &backend.AdminUser{Email: "a@example.com", Role: "admin", IsActive: true}}
	w = perform(router(admin, RequireAdminRole()), "Bearer tok-1")
	assert.Equal(t, http.StatusOK, w.Code)
}
