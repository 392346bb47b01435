package tccapi

import (
	"context"
	"net/http"
	"net/url"
)

// CreateConsignment 调用 POST /consignments
func (c *Client) CreateConsignment(ctx context.Context, req ConsignmentRequest) (*Consignment, error) {
	var out Consignment
	if err := c.do(ctx, http.MethodPost, "/consignments", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListConsignments 调用 GET /consignments
func (c *Client) ListConsignments(ctx context.Context) ([]Consignment, error) {
	var out []Consignment
	err := c.do(ctx, http.MethodGet, "/consignments", nil, nil, &out)
	return out, err
}

// GetConsignment 调用 GET /consignments/{id}
func (c *Client) GetConsignment(ctx context.Context, id string) (*Consignment, error) {
	var out Consignment
	if err := c.do(ctx, http.MethodGet, resourcePath("/consignments", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateConsignment 调用 PUT /consignments/{id}
func (c *Client) UpdateConsignment(ctx context.Context, id string, req ConsignmentUpdate) (*Consignment, error) {
	var out Consignment
	if err := c.do(ctx, http.MethodPut, resourcePath("/consignments", id), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetConsignmentStatus 调用 GET /consignments/status/{id}
func (c *Client) GetConsignmentStatus(ctx context.Context, id string) (*ConsignmentStatusResult, error) {
	var out ConsignmentStatusResult
	if err := c.do(ctx, http.MethodGet, resourcePath("/consignments/status", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetConsignmentStats 调用 GET /consignments/stats?destination=
func (c *Client) GetConsignmentStats(ctx context.Context, destination string) (*ConsignmentStats, error) {
	var out ConsignmentStats
	query := url.Values{"destination": []string{destination}}
	if err := c.do(ctx, http.MethodGet, "/consignments/stats", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAverageWaitTime 调用 GET /consignments/average_wait_time
func (c *Client) GetAverageWaitTime(ctx context.Context) (*AverageWaitTime, error) {
	var out AverageWaitTime
	if err := c.do(ctx, http.MethodGet, "/consignments/average_wait_time", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
