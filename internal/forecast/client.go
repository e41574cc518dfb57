// Package forecast talks to the external forecasting service and owns the
// persisted history of past forecasts.
package forecast

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/s0v1x/EULERA/internal/model"
)

// ErrUnavailable is returned when the forecasting service cannot serve a
// prediction (non-200 status, network failure wrapped alongside it). Callers
// fall back to the "forecasting unavailable" view.
var ErrUnavailable = errors.New("forecasting service unavailable")

// Client calls the forecasting HTTP API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a Client for the given service base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 20 * time.Second},
	}
}

type predictRequest struct {
	Ticker string `json:"ticker"`
}

type predictResponse struct {
	Forecast float64 `json:"forecast"`
	CI       struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	} `json:"CI"`
}

func (c *Client) post(ctx context.Context, path, ticker string) (*http.Response, error) {
	body, err := json.Marshal(predictRequest{Ticker: ticker})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp, nil
}

// Predict requests a forecast for the ticker. Any non-200 status maps to
// ErrUnavailable.
func (c *Client) Predict(ctx context.Context, ticker string) (*model.Forecast, error) {
	resp, err := c.post(ctx, "/predict", ticker)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}
	return &model.Forecast{
		Price:         out.Forecast,
		ConfidenceMin: out.CI.Min,
		ConfidenceMax: out.CI.Max,
	}, nil
}

// UpdateModel asks the service to retrain its model for the ticker. Fired
// once per trading day after the close.
func (c *Client) UpdateModel(ctx context.Context, ticker string) error {
	resp, err := c.post(ctx, "/update", ticker)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	return nil
}
