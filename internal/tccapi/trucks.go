package tccapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListTrucks 调用 GET /trucks
func (c *Client) ListTrucks(ctx context.Context) ([]Truck, error) {
	var out []Truck
	err := c.do(ctx, http.MethodGet, "/trucks", nil, nil, &out)
	return out, err
}

// CreateTruck 调用 POST /trucks
func (c *Client) CreateTruck(ctx context.Context, req TruckRequest) (*Truck, error) {
	var out Truck
	if err := c.do(ctx, http.MethodPost, "/trucks", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTruck 调用 GET /trucks/{id}
func (c *Client) GetTruck(ctx context.Context, id string) (*Truck, error) {
	var out Truck
	if err := c.do(ctx, http.MethodGet, resourcePath("/trucks", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTruck 调用 PUT /trucks/{id}
func (c *Client) UpdateTruck(ctx context.Context, id string, req TruckUpdate) (*Truck, error) {
	var out Truck
	if err := c.do(ctx, http.MethodPut, resourcePath("/trucks", id), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTruckStatuses 调用 GET /trucks/status
func (c *Client) ListTruckStatuses(ctx context.Context) ([]TruckStatusSummary, error) {
	var out []TruckStatusSummary
	err := c.do(ctx, http.MethodGet, "/trucks/status", nil, nil, &out)
	return out, err
}

// GetTruckUsage 调用 GET /trucks/usage?days=
func (c *Client) GetTruckUsage(ctx context.Context, days int) ([]TruckUsage, error) {
	var out []TruckUsage
	var query url.Values
	if days > 0 {
		query = url.Values{"days": []string{strconv.Itoa(days)}}
	}
	err := c.do(ctx, http.MethodGet, "/trucks/usage", query, nil, &out)
	return out, err
}

// GetAverageIdleTime 调用 GET /trucks/average_idle_time
func (c *Client) GetAverageIdleTime(ctx context.Context) (*AverageIdleTime, error) {
	var out AverageIdleTime
	if err := c.do(ctx, http.MethodGet, "/trucks/average_idle_time", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
