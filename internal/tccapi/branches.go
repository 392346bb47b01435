package tccapi

import (
	"context"
	"net/http"
)

// ListBranches 调用 GET /branches
func (c *Client) ListBranches(ctx context.Context) ([]Branch, error) {
	var out []Branch
	err := c.do(ctx, http.MethodGet, "/branches", nil, nil, &out)
	return out, err
}

// CreateBranch 调用 POST /branches
func (c *Client) CreateBranch(ctx context.Context, req BranchRequest) (*Branch, error) {
	var out Branch
	if err := c.do(ctx, http.MethodPost, "/branches", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBranch 调用 GET /branches/{id}
func (c *Client) GetBranch(ctx context.Context, id string) (*Branch, error) {
	var out Branch
	if err := c.do(ctx, http.MethodGet, resourcePath("/branches", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
