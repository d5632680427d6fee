package client

import "context"

// LoginResponse is the response from a login request
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// RegisterResponse is the response from a register request
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// MessageResponse is a generic confirmation response
type MessageResponse struct {
	Message string `json:"message"`
}

// Login authenticates with email and password and returns a bearer token
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var result LoginResponse
	if err := c.Post(ctx, "/login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Register creates a new account
func (c *Client) Register(ctx context.Context, name, email, password, role, adminID string) (*RegisterResponse, error) {
	body := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     role,
	}
	if adminID != "" {
		body["adminId"] = adminID
	}

	var result RegisterResponse
	if err := c.Post(ctx, "/register", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Logout invalidates the current session on the server side
func (c *Client) Logout(ctx context.Context) (*MessageResponse, error) {
	var result MessageResponse
	if err := c.Post(ctx, "/logout", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
