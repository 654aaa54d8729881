package models

import (
	"time"

	"github.com/google/uuid"
)

// Identity providers
const (
	ProviderLocal  = "LOCAL"
	ProviderGoogle = "GOOGLE"
)

// User represents an account in the system. Password is null for accounts
// created through an OAuth provider. OTP, OTPExpiry and OTPAttempts describe
// the pending one-time code challenge: OTP and OTPExpiry are either both set
// or both null, and OTPAttempts only carries meaning while a code is pending.
type User struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	Name           string     `json:"name" db:"name"`
	Email          string     `json:"email" db:"email"`
	Username       string     `json:"username" db:"username"`
	Password       *string    `json:"-" db:"password"`
	Phone          string     `json:"phone,omitempty" db:"phone"`
	Picture        string     `json:"picture,omitempty" db:"picture"`
	Provider       string     `json:"provider" db:"provider"`
	IsVerified     bool       `json:"is_verified" db:"is_verified"`
	Is2FAEnabled   bool       `json:"is_2fa_enabled" db:"is_2fa_enabled"`
	OTP            *string    `json:"-" db:"otp"`
	OTPExpiry      *time.Time `json:"-" db:"otp_expiry"`
	OTPAttempts    int        `json:"-" db:"otp_attempts"`
	SecurityAnswer *string    `json:"-" db:"security_answer"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// HasPendingOTP reports whether a one-time code challenge is pending
func (u *User) HasPendingOTP() bool {
	return u.OTP != nil && u.OTPExpiry != nil
}

// SignUpRequest represents a request to create an account
type SignUpRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"required,min=10"`
}

// SignInRequest represents a request to authenticate with email and password
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// VerifyOTPRequest represents a request to verify a pending one-time code
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6"`
}

// ForgotPasswordRequest represents a password reset request. The security
// answer is the out-of-band identity check required before the overwrite.
type ForgotPasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Answer   string `json:"answer" validate:"required"`
}

// GoogleProfile holds the fields consumed from Google's userinfo endpoint
type GoogleProfile struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// AuthResponse represents the response after an authentication attempt.
// RequiresOTP is true when a one-time code was sent instead of a session.
type AuthResponse struct {
	Token       string    `json:"token,omitempty"`
	RequiresOTP bool      `json:"requiresOTP,omitempty"`
	User        *User     `json:"user,omitempty"`
	ExpiresAt   int64     `json:"expires_at,omitempty"`
	IsNew       bool      `json:"-"`
	UserID      uuid.UUID `json:"-"`
}

// UserRegisteredEvent is published when a new account is created
type UserRegisteredEvent struct {
	UserID   string    `json:"user_id"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
	Provider string    `json:"provider"`
	At       time.Time `json:"at"`
}

// UserVerifiedEvent is published when an account completes OTP verification
type UserVerifiedEvent struct {
	UserID string    `json:"user_id"`
	Email  string    `json:"email"`
	At     time.Time `json:"at"`
}
