// Package auth provides authentication and authorization functionality for uamd.
package auth

import (
	"strings"
	"time"
)

// Role represents a user role name
type Role string

const (
	// RoleAdmin grants access to the user administration endpoints
	RoleAdmin Role = "ADMIN"
	// RoleUser is the standard role with access to its own profile only
	RoleUser Role = "USER"
)

// NormalizeRole uppercases a raw role string and validates it against the
// known role set. The bool reports whether the role is valid.
func NormalizeRole(raw string) (Role, bool) {
	role := Role(strings.ToUpper(raw))
	switch role {
	case RoleAdmin, RoleUser:
		return role, true
	default:
		return "", false
	}
}

// IsAdmin returns true if the role grants administrator access
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// User represents a user account.
//
// PasswordHash is serialized on purpose: the admin detail and profile
// endpoints return the stored row as-is, bcrypt hash included.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password"`
	Role         Role      `json:"role"`
	AdminID      *string   `json:"adminId"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TokenClaims represents the JWT token claims carried through request context
type TokenClaims struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}

// IsAdmin returns true if the token carries the administrator role
func (c *TokenClaims) IsAdmin() bool {
	return c.Role.IsAdmin()
}
