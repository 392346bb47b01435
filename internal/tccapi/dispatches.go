package tccapi

import (
	"context"
	"net/http"
)

// ListDispatches 调用 GET /dispatches
func (c *Client) ListDispatches(ctx context.Context) ([]Dispatch, error) {
	var out []Dispatch
	err := c.do(ctx, http.MethodGet, "/dispatches", nil, nil, &out)
	return out, err
}

// GetDispatch 调用 GET /dispatches/{id}
func (c *Client) GetDispatch(ctx context.Context, id string) (*Dispatch, error) {
	var out Dispatch
	if err := c.do(ctx, http.MethodGet, resourcePath("/dispatches", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInvoices 调用 GET /invoices
func (c *Client) ListInvoices(ctx context.Context) ([]Invoice, error) {
	var out []Invoice
	err := c.do(ctx, http.MethodGet, "/invoices", nil, nil, &out)
	return out, err
}

// GetInvoice 调用 GET /invoices/{id}
func (c *Client) GetInvoice(ctx context.Context, id string) (*Invoice, error) {
	var out Invoice
	if err := c.do(ctx, http.MethodGet, resourcePath("/invoices", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
