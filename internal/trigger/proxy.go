package trigger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ProxyPath is the route the proxy serves.
const ProxyPath = "/api/trigger-ai"

// ProxyClient is the caller side of the proxy: it asks a running server to
// fire the webhook on its behalf.
type ProxyClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewProxyClient creates a client for the server at baseURL.
func NewProxyClient(baseURL string, httpClient *http.Client) *ProxyClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ProxyClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// TriggerAssignment calls the proxy. A non-2xx reply fails with the
// envelope's message, falling back to "server error".
func (c *ProxyClient) TriggerAssignment(ctx context.Context) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+ProxyPath, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var envelope Response
	decodeErr := json.Unmarshal(body, &envelope)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if decodeErr == nil && envelope.Message != "" {
			if envelope.Error != "" {
				return nil, fmt.Errorf("%s: %s", envelope.Message, envelope.Error)
			}
			return nil, errors.New(envelope.Message)
		}
		return nil, errors.New("server error")
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode proxy response: %w", decodeErr)
	}

	return &Result{StatusCode: resp.StatusCode, Data: envelope.Data}, nil
}
