package trigger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// WebhookClient calls the workflow webhook directly. It is the server side
// of the proxy.
type WebhookClient struct {
	url        string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// NewWebhookClient creates a client for url. Every call is bounded by
// timeout.
func NewWebhookClient(url string, timeout time.Duration, logger *slog.Logger) *WebhookClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &WebhookClient{
		url:        url,
		timeout:    timeout,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// URL returns the webhook target.
func (c *WebhookClient) URL() string {
	return c.url
}

// TriggerAssignment issues one GET with no body. Network failures, timeouts
// and non-2xx responses all come back as an error carrying the cause.
func (c *WebhookClient) TriggerAssignment(ctx context.Context) (*Result, error) {
	c.logger.Info("triggering assignment workflow", "target", c.url)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, c.fail(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, c.fail(fmt.Errorf("timeout of %s exceeded", c.timeout))
		}
		return nil, c.fail(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.fail(fmt.Errorf("request failed with status code %d", resp.StatusCode))
	}

	c.logger.Info("assignment workflow responded", "status", resp.StatusCode)
	return &Result{StatusCode: resp.StatusCode, Data: passThrough(body)}, nil
}

func (c *WebhookClient) fail(err error) error {
	c.logger.Error("assignment workflow call failed", "target", c.url, "error", err)
	return err
}

// passThrough keeps JSON bodies as-is and wraps anything else in a JSON
// string. An empty body becomes null.
func passThrough(body []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return json.RawMessage("null")
	}
	if json.Valid(trimmed) {
		return json.RawMessage(trimmed)
	}
	quoted, _ := json.Marshal(string(body))
	return quoted
}
