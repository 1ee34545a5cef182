// Package emailjs is a minimal client for the EmailJS REST API
// (https://api.emailjs.com). EmailJS identifies a send by a service id, a
// template id, and a public key; template parameters fill the named slots
// of the template.
package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/talentgate/careers_backend/config"
)

const defaultBaseURL = "https://api.emailjs.com"

// Client provides templated email sending via EmailJS.
type Client struct {
	serviceID  string
	templateID string
	publicKey  string
	baseURL    string
	httpClient *http.Client
	enabled    bool
}

// NewFromConfig creates a client from the notification configuration.
// Missing credentials yield a disabled client that no-ops on Send; callers
// are expected to log and continue, never fail the submission path.
func NewFromConfig(cfg config.EmailJSConfig) *Client {
	c := &Client{
		serviceID:  cfg.ServiceID,
		templateID: cfg.TemplateID,
		publicKey:  cfg.PublicKey,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	c.enabled = cfg.ServiceID != "" && cfg.TemplateID != "" && cfg.PublicKey != ""
	return c
}

// IsEnabled returns whether the client has enough configuration to send.
func (c *Client) IsEnabled() bool {
	return c.enabled
}

// TemplateID returns the configured template identifier.
func (c *Client) TemplateID() string {
	return c.templateID
}

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams map[string]any `json:"template_params"`
}

// Send fills the configured template with params and posts it. A disabled
// client is a no-op returning nil.
func (c *Client) Send(ctx context.Context, params map[string]any) error {
	if !c.enabled {
		return nil
	}

	body, err := json.Marshal(sendRequest{
		ServiceID:      c.serviceID,
		TemplateID:     c.templateID,
		UserID:         c.publicKey,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("emailjs: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1.0/email/send", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("emailjs: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs: send failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("emailjs: send failed: status %d: %s", resp.StatusCode, detail)
	}
	return nil
}
