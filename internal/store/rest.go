package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/yukikurage/taskforce/internal/constants"
)

// RESTClient talks to a PostgREST endpoint such as Supabase's /rest/v1.
type RESTClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type RESTOption func(*RESTClient)

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(c *http.Client) RESTOption {
	return func(r *RESTClient) {
		r.httpClient = c
	}
}

// NewRESTClient creates a client for the project at baseURL authenticated
// with apiKey.
func NewRESTClient(baseURL, apiKey string, opts ...RESTOption) *RESTClient {
	c := &RESTClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *RESTClient) List(ctx context.Context, table string, dest any) error {
	query := url.Values{
		"select": {"*"},
		"order":  {"created_at.desc,id.desc"},
	}
	body, err := c.do(ctx, http.MethodGet, table, query, nil, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("failed to decode %s rows: %w", table, err)
	}
	return nil
}

func (c *RESTClient) Insert(ctx context.Context, table string, row any) error {
	payload, err := insertPayload(row)
	if err != nil {
		return err
	}

	headers := map[string]string{"Prefer": "return=representation"}
	body, err := c.do(ctx, http.MethodPost, table, nil, payload, headers)
	if err != nil {
		return err
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil || len(rows) == 0 {
		// The row was written; the store just did not echo it back.
		return nil
	}
	if err := json.Unmarshal(rows[0], row); err != nil {
		return fmt.Errorf("failed to decode inserted %s row: %w", table, err)
	}
	return nil
}

func (c *RESTClient) Delete(ctx context.Context, table string, id uint64) error {
	query := url.Values{"id": {"eq." + strconv.FormatUint(id, 10)}}
	_, err := c.do(ctx, http.MethodDelete, table, query, nil, nil)
	return err
}

func (c *RESTClient) Ping(ctx context.Context) error {
	query := url.Values{"select": {"id"}, "limit": {"1"}}
	_, err := c.do(ctx, http.MethodGet, constants.TableMembers, query, nil, nil)
	return err
}

func (c *RESTClient) do(ctx context.Context, method, table string, query url.Values, payload []byte, headers map[string]string) ([]byte, error) {
	endpoint := c.baseURL + "/rest/v1/" + url.PathEscape(table)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
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

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeError(resp.StatusCode, body)
	}
	return body, nil
}

// insertPayload encodes row as a one-element JSON array without the columns
// the store assigns itself.
func insertPayload(row any) ([]byte, error) {
	raw, err := json.Marshal(row)
	if err != nil {
		return nil, fmt.Errorf("failed to encode row: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("row must encode as a JSON object: %w", err)
	}
	for _, col := range storeAssignedColumns {
		delete(fields, col)
	}

	return json.Marshal([]map[string]json.RawMessage{fields})
}
