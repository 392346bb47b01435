package tccapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// Register 调用 POST /users/register
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodPost, "/users/register", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login 调用 POST /users/login，返回原始响应体以及其中的 access_token
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var raw json.RawMessage
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/users/login", nil, body, &raw); err != nil {
		return nil, err
	}
	result := &LoginResult{Raw: raw}
	var probe struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(raw, &probe); err == nil {
		result.AccessToken = strings.TrimSpace(probe.AccessToken)
	}
	return result, nil
}
