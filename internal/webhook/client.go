// Package webhook posts Block Kit messages to Slack incoming webhooks.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/slack-go/slack"
)

// ErrNoWebhookURL is returned when a post is attempted without a target URL.
var ErrNoWebhookURL = errors.New("slack webhook url is not configured")

// maxErrorBody caps how much of an upstream error response is kept.
const maxErrorBody = 4 << 10

// StatusError reports a non-2xx answer from the webhook.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("slack webhook status %d: %s", e.Code, e.Body)
}

// Client delivers webhook messages over HTTP.
type Client struct {
	HTTPClient *http.Client
}

// NewClient creates a client whose requests give up after timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Post sends msg as JSON to webhookURL. It makes exactly one attempt.
func (c *Client) Post(ctx context.Context, webhookURL string, msg *slack.WebhookMessage) error {
	if webhookURL == "" {
		return ErrNoWebhookURL
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal webhook message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Code: resp.StatusCode, Body: string(text)}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) httpClient() *http.Client {
	if c == nil || c.HTTPClient == nil {
		return http.DefaultClient
	}
	return c.HTTPClient
}
