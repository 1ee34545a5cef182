// Package geoip looks up the caller's country code via an
// ipapi.co-compatible endpoint. It backs the wizard's best-effort country
// preselection and nothing else; failures are expected and must be
// swallowed by the caller.
package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/talentgate/careers_backend/config"
)

const defaultBaseURL = "https://ipapi.co"

// Client queries the geolocation provider for the calling host.
type Client struct {
	baseURL    string
	httpClient *http.Client
	enabled    bool
}

func NewFromConfig(cfg config.GeoIPConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}

	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: timeout},
		enabled:    cfg.Enabled,
	}
}

// IsEnabled reports whether lookups are configured on.
func (c *Client) IsEnabled() bool {
	return c.enabled
}

type lookupResponse struct {
	CountryCode string `json:"country_code"`
}

// SuggestCountry returns the caller's lowercase ISO country code.
func (c *Client) SuggestCountry(ctx context.Context) (string, error) {
	if !c.enabled {
		return "", fmt.Errorf("geoip: lookups disabled")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/json/", nil)
	if err != nil {
		return "", fmt.Errorf("geoip: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("geoip: lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geoip: lookup failed: status %d", resp.StatusCode)
	}

	var out lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("geoip: decode response: %w", err)
	}
	if out.CountryCode == "" {
		return "", fmt.Errorf("geoip: empty country code")
	}
	return strings.ToLower(out.CountryCode), nil
}
