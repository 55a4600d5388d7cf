package admin

// RequestOTPRequest starts an email login.
type RequestOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyOTPRequest exchanges the emailed code for a session.
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6"`
}

// CreateUserRequest registers a new back-office user.
type CreateUserRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=admin manager"`
}

// UpdateUserRequest changes role and/or active flag. Omitted fields stay
// unchanged.
type UpdateUserRequest struct {
	Role     string `json:"role" binding:"omitempty,oneof=admin manager"`
	IsActive *bool  `json:"is_active"`
}
