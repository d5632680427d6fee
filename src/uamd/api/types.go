package api

import (
	"github.com/bitswalk/uam/src/common/errors"
	"github.com/bitswalk/uam/src/uamd/api/base"
	"github.com/bitswalk/uam/src/uamd/auth"
)

// ErrorResponse is the JSON error body shared by all endpoints
type ErrorResponse = errors.Response

// API holds all handler instances and dependencies
type API struct {
	Base *base.Handler

	repo       *auth.Repository
	jwtService *auth.JWTService
}

// Config contains API configuration options
type Config struct {
	Repository *auth.Repository
	JWTService *auth.JWTService
}

// RegisterRequest is the self-registration request body.
// AdminID is optional and stored as given for USER accounts.
type RegisterRequest struct {
	Name     string  `json:"name" example:"Alice"`
	Email    string  `json:"email" example:"alice@example.com"`
	Password string  `json:"password" example:"s3cret"`
	Role     string  `json:"role" example:"ADMIN"`
	AdminID  *string `json:"adminId,omitempty"`
}

// LoginRequest is the login request body
type LoginRequest struct {
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"s3cret"`
}

// CreateUserRequest is the admin user-creation request body
type CreateUserRequest struct {
	Name     string `json:"name" example:"Bob"`
	Email    string `json:"email" example:"bob@example.com"`
	Password string `json:"password" example:"s3cret"`
	Role     string `json:"role" example:"USER"`
}

// UpdateUserRequest is the admin user-update request body.
// Only name and email are mutable.
type UpdateUserRequest struct {
	Name  string `json:"name" example:"Bob"`
	Email string `json:"email" example:"bob@example.com"`
}

// RegisterResponse is returned on successful registration or creation
type RegisterResponse struct {
	Message string `json:"message" example:"User registered successfully"`
	UserID  string `json:"userId" example:"e1b7c9ce-4c5b-4f6e-9f2a-70f2a7a1f3ab"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	Message string `json:"message" example:"Login successful"`
	Token   string `json:"token"`
}

// MessageResponse is a bare confirmation message
type MessageResponse struct {
	Message string `json:"message" example:"Logged out"`
}

// UpdateUserResponse is returned on successful update
type UpdateUserResponse struct {
	Message string     `json:"message" example:"User updated successfully"`
	User    *auth.User `json:"user"`
}

// UserSummary is the projection returned by the user listing.
// The password hash is deliberately absent here.
type UserSummary struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  auth.Role `json:"role"`
}
