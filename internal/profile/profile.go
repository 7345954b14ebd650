// Package profile resolves user plan and budget facts from the account
// service. The snapshot builder consumes it through snapshot.ProfileSource.
package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"study-copilot/internal/snapshot"
)

const defaultTimeout = 5 * time.Second

type Config struct {
	URL         string // base URL of the account service
	AccessToken string
	Timeout     time.Duration
}

func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("profile: URL is required")
	}
	return nil
}

// Client fetches profiles over HTTP.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

var _ snapshot.ProfileSource = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type profileResponse struct {
	Plan            string `json:"plan"`
	RemainingTokens int64  `json:"remaining_tokens"`
}

// GetProfile fetches GET {URL}/v1/users/{id}/profile.
func (c *Client) GetProfile(ctx context.Context, userID string) (snapshot.Profile, error) {
	endpoint := fmt.Sprintf("%s/v1/users/%s/profile", c.cfg.URL, url.PathEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return snapshot.Profile{}, fmt.Errorf("profile: build request: %w", err)
	}
	if c.cfg.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return snapshot.Profile{}, fmt.Errorf("profile: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return snapshot.Profile{}, fmt.Errorf("profile: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return snapshot.Profile{}, fmt.Errorf("profile: status %d: %s", resp.StatusCode, string(body))
	}

	var pr profileResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return snapshot.Profile{}, fmt.Errorf("profile: decode response: %w", err)
	}

	return snapshot.Profile{
		Plan:            pr.Plan,
		RemainingTokens: pr.RemainingTokens,
	}, nil
}

// Static serves a fixed profile for every user. Used in development when no
// account service is configured.
type Static struct {
	Profile snapshot.Profile
}

var _ snapshot.ProfileSource = Static{}

func (s Static) GetProfile(ctx context.Context, userID string) (snapshot.Profile, error) {
	return s.Profile, nil
}
