package client

import (
	"context"
	"fmt"
)

// User is a full user record as returned by the API
type User struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"password"`
	Role         string  `json:"role"`
	AdminID      *string `json:"adminId"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// UserSummary is the projection returned by the list endpoint
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UpdateUserResponse is the response from an update request
type UpdateUserResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// Profile returns the authenticated user's own record
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var result User
	if err := c.Get(ctx, "/profile", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListUsers returns all users managed by the authenticated admin
func (c *Client) ListUsers(ctx context.Context) ([]UserSummary, error) {
	var result []UserSummary
	if err := c.Get(ctx, "/admin/read", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetUser returns a single user in the authenticated admin's group
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var result User
	if err := c.Get(ctx, "/admin/read/"+id, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateUser creates a user owned by the authenticated admin
func (c *Client) CreateUser(ctx context.Context, name, email, password, role string) (*RegisterResponse, error) {
	body := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     role,
	}

	var result RegisterResponse
	if err := c.Post(ctx, "/admin/create", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateUser updates a user in the authenticated admin's group. Only name
// and email are mutable; empty fields are left unchanged.
func (c *Client) UpdateUser(ctx context.Context, id, name, email string) (*UpdateUserResponse, error) {
	body := map[string]string{}
	if name != "" {
		body["name"] = name
	}
	if email != "" {
		body["email"] = email
	}

	var result UpdateUserResponse
	if err := c.Put(ctx, "/admin/update/"+id, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteUser removes a user from the authenticated admin's group
func (c *Client) DeleteUser(ctx context.Context, id string) (*MessageResponse, error) {
	var result MessageResponse
	if err := c.Delete(ctx, "/admin/delete/"+id, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Health checks the server health endpoint
func (c *Client) Health(ctx context.Context) (map[string]interface{}, error) {
	var result map[string]interface{}
	if err := c.Get(ctx, "/v1/health", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Version returns the server version information
func (c *Client) Version(ctx context.Context) (map[string]interface{}, error) {
	var result map[string]interface{}
	if err := c.Get(ctx, "/v1/version", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// String returns a printable identity for a user record
func (u *User) String() string {
	return fmt.Sprintf("%s <%s> (%s)", u.Name, u.Email, u.Role)
}
