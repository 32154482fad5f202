// Package oracle implements the external player-value source: an HTTP
// client for a sports-data values endpoint plus retry and rate-limit
// wrappers. Everything here is allowed to fail; the valuation core
// degrades to its heuristic when it does.
package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fantasygrid/trade-api/internal/models"
)

const defaultTimeout = 5 * time.Second

// Oracle resolves a player to an externally sourced value.
type Oracle interface {
	PlayerValue(ctx context.Context, p models.Player) (float64, error)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the client reaches the upstream values API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches player values from the upstream API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

// NewClient constructs an oracle client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg),
	}
}

type valueResponse struct {
	Value float64 `json:"value"`
}

// PlayerValue fetches the upstream value for one player. Non-200 statuses
// and undecodable payloads are errors; validating the number itself
// (positive, finite) is the caller's job.
func (c *Client) PlayerValue(ctx context.Context, p models.Player) (float64, error) {
	endpoint := fmt.Sprintf("%s/v1/players/value?name=%s&position=%s",
		c.baseURL, url.QueryEscape(p.Name), url.QueryEscape(string(p.Position)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("oracle: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload valueResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("oracle: decode response: %w", err)
	}
	return payload.Value, nil
}

func resolveHTTPClient(cfg Config) httpDoer {
	if cfg.HTTPClient != nil {
		return cfg.HTTPClient
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
