// Package geo calls the external routing collaborator that estimates the
// distance and transit time between two addresses. The estimate is an
// enrichment: order creation proceeds without it when the collaborator is
// down, so callers bound the call with a deadline and absorb failures.
package geo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

type estimateRequest struct {
	From addressPayload `json:"from"`
	To   addressPayload `json:"to"`
}

type addressPayload struct {
	Street string `json:"street"`
	City   string `json:"city"`
	Zone   string `json:"zone"`
}

type estimateResponse struct {
	DistanceKm      float64 `json:"distance_km"`
	DurationMinutes int     `json:"duration_minutes"`
}

// Client implements ports.DistanceClient over the collaborator's HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a distance client for the given base URL. The timeout
// caps each request; the caller's context can shorten it further.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Estimate requests a route estimate between two addresses.
func (c *Client) Estimate(ctx context.Context, from, to kernel.Address) (order.DistanceEstimate, error) {
	if err := from.Validate(); err != nil {
		return order.DistanceEstimate{}, err
	}
	if err := to.Validate(); err != nil {
		return order.DistanceEstimate{}, err
	}

	body, err := json.Marshal(estimateRequest{
		From: addressToPayload(from),
		To:   addressToPayload(to),
	})
	if err != nil {
		return order.DistanceEstimate{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/estimate", bytes.NewReader(body))
	if err != nil {
		return order.DistanceEstimate{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return order.DistanceEstimate{}, fmt.Errorf("distance collaborator request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return order.DistanceEstimate{}, fmt.Errorf(
			"distance collaborator returned status %d", resp.StatusCode)
	}

	var payload estimateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return order.DistanceEstimate{}, fmt.Errorf("distance collaborator response is malformed: %w", err)
	}

	return order.DistanceEstimate{
		DistanceKm:      payload.DistanceKm,
		DurationMinutes: payload.DurationMinutes,
	}, nil
}

func addressToPayload(addr kernel.Address) addressPayload {
	return addressPayload{
		Street: addr.Street(),
		City:   addr.City(),
		Zone:   addr.Zone().Code(),
	}
}
