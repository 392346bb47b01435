package tccapi

import (
	"context"
	"net/http"
)

// ListUsers 调用 GET /users
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var out []User
	err := c.do(ctx, http.MethodGet, "/users", nil, nil, &out)
	return out, err
}

// GetUser 调用 GET /users/{id}
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodGet, resourcePath("/users", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser 调用 PUT /users/{id}
func (c *Client) UpdateUser(ctx context.Context, id string, req UserUpdate) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodPut, resourcePath("/users", id), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser 调用 DELETE /users/{id}
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, resourcePath("/users", id), nil, nil, nil)
}

// GetCurrentUser 调用 GET /users/me
func (c *Client) GetCurrentUser(ctx context.Context) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
