package client

import (
	"context"

	domain "github.com/dealscout/dealscout/pkg/types"
)

// Health checks the server liveness endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.get(ctx, "/healthz", nil)
}

// Ingest submits a batch of raw listings and returns the stored forms.
func (c *Client) Ingest(ctx context.Context, listings []domain.Listing) ([]domain.Listing, error) {
	var stored []domain.Listing
	if err := c.post(ctx, "/api/v1/ingest", listings, &stored); err != nil {
		return nil, err
	}
	return stored, nil
}

// Listings returns all stored listings with their latest scores.
func (c *Client) Listings(ctx context.Context) ([]domain.Listing, error) {
	var listings []domain.Listing
	if err := c.get(ctx, "/api/v1/listings", &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// Score submits a batch of listing facts and returns the score responses.
func (c *Client) Score(ctx context.Context, reqs []domain.ScoreRequest) ([]domain.ScoreResponse, error) {
	var responses []domain.ScoreResponse
	if err := c.post(ctx, "/api/v1/score", reqs, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

// NotifyItem is one notification request.
type NotifyItem struct {
	VIN     string `json:"vin"`
	Channel string `json:"channel,omitempty"`
	Message string `json:"message,omitempty"`
}

// NotifyResult reports one recorded notification.
type NotifyResult struct {
	VIN      string `json:"vin"`
	Notified bool   `json:"notified"`
	Channel  string `json:"channel"`
}

// Notify records a batch of notifications.
func (c *Client) Notify(ctx context.Context, items []NotifyItem) ([]NotifyResult, error) {
	var results []NotifyResult
	if err := c.post(ctx, "/api/v1/notify", items, &results); err != nil {
		return nil, err
	}
	return results, nil
}
