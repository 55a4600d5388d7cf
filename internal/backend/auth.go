package backend

import "context"

// AdminUser mirrors the user record managed by the remote auth function.
type AdminUser struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
	IsActive  bool   `json:"is_active"`
}

// AdminSession is the token the remote auth function issues on OTP login.
type AdminSession struct {
	Token string    `json:"session_token"`
	User  AdminUser `json:"user"`
}

type authRequest struct {
	Action   string `json:"action"`
	Email    string `json:"email,omitempty"`
	OTP      string `json:"otp,omitempty"`
	NewEmail string `json:"new_email,omitempty"`
	NewRole  string `json:"new_role,omitempty"`
	UserID   int64  `json:"user_id,omitempty"`
	Role     string `json:"role,omitempty"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// RequestOTP asks the remote auth function to email a one-time code.
func (c *Client) RequestOTP(ctx context.Context, email string) error {
	return c.postJSON(ctx, c.urls.AdminAuth, "", authRequest{Action: "request_otp", Email: email}, nil)
}

// VerifyOTP exchanges an emailed code for a session token.
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) (*AdminSession, error) {
	var session AdminSession
	err := c.postJSON(ctx, c.urls.AdminAuth, "", authRequest{Action: "verify_otp", Email: email, OTP: otp}, &session)
	if err != nil {
		return nil, err
	}
	if session.Token == "" {
		return nil, &Error{Status: 200, Message: "no session token issued"}
	}
	return &session, nil
}

// VerifySession resolves a bearer token into its user, or fails with 401.
func (c *Client) VerifySession(ctx context.Context, token string) (*AdminUser, error) {
	var resp struct {
		User AdminUser `json:"user"`
	}
	err := c.postJSON(ctx, c.urls.AdminAuth, token, authRequest{Action: "verify_session"}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// ListUsers returns all admin-console users. Admin role required remotely.
func (c *Client) ListUsers(ctx context.Context, token string) ([]AdminUser, error) {
	var resp struct {
		Users []AdminUser `json:"users"`
	}
	err := c.postJSON(ctx, c.urls.AdminAuth, token, authRequest{Action: "list_users"}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// CreateUser registers a new admin-console user.
func (c *Client) CreateUser(ctx context.Context, token, email, role string) (int64, error) {
	var resp struct {
		UserID int64 `json:"user_id"`
	}
	err := c.postJSON(ctx, c.urls.AdminAuth, token, authRequest{Action: "create_user", NewEmail: email, NewRole: role}, &resp)
	if err != nil {
		return 0, err
	}
	return resp.UserID, nil
}

// UpdateUser changes a user's role and/or active flag. Nil leaves a field
// untouched.
func (c *Client) UpdateUser(ctx context.Context, token string, userID int64, role string, isActive *bool) error {
	return c.postJSON(ctx, c.urls.AdminAuth, token, authRequest{
		Action:   "update_user",
		UserID:   userID,
		Role:     role,
		IsActive: isActive,
	}, nil)
}
