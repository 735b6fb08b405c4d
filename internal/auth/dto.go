package auth

import (
	"time"

	"github.com/scoutworks/supplierscout-backend/internal/users"
)

// RegisterRequest carries a new account registration.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	Email    string `json:"email" validate:"omitempty,email"`
	Name     string `json:"name" validate:"omitempty,max=128"`
}

// LoginRequest carries username/password credentials.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SSORequest carries a signed SSO assertion token.
type SSORequest struct {
	Assertion string `json:"assertion" validate:"required"`
}

// SessionDTO is the transport shape of an issued session.
type SessionDTO struct {
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	SSO          bool      `json:"sso,omitempty"`
}

// AuthResponse pairs an issued session with its user.
type AuthResponse struct {
	Session SessionDTO     `json:"session"`
	User    *users.UserDTO `json:"user"`
}
