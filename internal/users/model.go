package users

import (
	"time"

	"github.com/google/uuid"
)

// Role partitions what a session is allowed to do.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
	RoleGuest Role = "guest"
)

// User is the in-memory account record. PasswordHash is empty for SSO and
// guest accounts.
type User struct {
	ID           uuid.UUID
	Username     string
	DisplayName  string
	Email        string
	PasswordHash string
	Role         Role
	SSO          bool
	WalmartID    string
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}
