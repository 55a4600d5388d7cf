package admin

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sentagsite/internal/backend"
	"sentagsite/internal/pkg/logger"
	"sentagsite/internal/pkg/response"
)

// RemoteAPI is the slice of the backend client the admin handlers use.
type RemoteAPI interface {
	RequestOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string) (*backend.AdminSession, error)
	ListUsers(ctx context.Context, token string) ([]backend.AdminUser, error)
	CreateUser(ctx context.Context, token, email, role string) (int64, error)
	UpdateUser(ctx context.Context, token string, userID int64, role string, isActive *bool) error
}

// Handler proxies the back-office auth and user management to the remote
// auth function. No credentials or sessions are stored locally.
type Handler struct {
	api RemoteAPI
}

func NewHandler(api RemoteAPI) *Handler {
	return &Handler{api: api}
}

// RequestOTP asks the remote side to email a one-time code.
func (h *Handler) RequestOTP(c *gin.Context) {
	var req RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "A valid email is required")
		return
	}

	if err := h.api.RequestOTP(c.Request.Context(), req.Email); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Code sent"})
}

// VerifyOTP exchanges the code for a session token.
func (h *Handler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Email and 6-digit code are required")
		return
	}

	session, err := h.api.VerifyOTP(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"session_token": session.Token,
		"user":          session.User,
	})
}

// Me returns the user resolved by the auth middleware.
func (h *Handler) Me(c *gin.Context) {
	user := c.MustGet("admin_user").(*backend.AdminUser)
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// ListUsers returns all back-office users.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.api.ListUsers(c.Request.Context(), c.GetString("admin_token"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if users == nil {
		users = []backend.AdminUser{}
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

// CreateUser registers a new back-office user.
func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Email and role are required")
		return
	}

	id, err := h.api.CreateUser(c.Request.Context(), c.GetString("admin_token"), req.Email, req.Role)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"user_id": id})
}

// UpdateUser changes a user's role or active flag.
func (h *Handler) UpdateUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user id")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}
	if req.Role == "" && req.IsActive == nil {
		response.Error(c, http.StatusBadRequest, "EMPTY_UPDATE", "Nothing to update")
		return
	}

	if err := h.api.UpdateUser(c.Request.Context(), c.GetString("admin_token"), userID, req.Role, req.IsActive); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "User updated"})
}

// respondError relays the remote status for auth failures and hides
// everything else behind a gateway error.
func (h *Handler) respondError(c *gin.Context, err error) {
	var be *backend.Error
	if errors.As(err, &be) {
		switch be.Status {
		case http.StatusUnauthorized:
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", be.Message)
			return
		case http.StatusForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", be.Message)
			return
		case http.StatusBadRequest, http.StatusConflict:
			response.Error(c, http.StatusBadRequest, "REJECTED", be.Message)
			return
		}
	}
	logger.Warnf("admin: remote call failed: %v", err)
	response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", "Could not reach the auth service")
}
