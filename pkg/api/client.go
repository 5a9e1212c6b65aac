// Package api is the authenticated HTTP client for the remote storefront
// REST API. One attempt per call: no retry, no backoff, no client-level
// timeout. Failure policy belongs to the caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{},
	}
}

// errorBody is the error envelope the API uses: FastAPI-style "detail" or
// the flat "message" some legacy endpoints still return.
type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
}

// Do issues one authenticated JSON request. On any 2xx the response body is
// decoded into out (which may be nil). On a non-2xx it returns *HTTPError;
// on transport failure *NetworkError.
func (c *Client) Do(ctx context.Context, method, path, token string, body, out interface{}) error {
	if token == "" {
		return ErrAuthRequired
	}

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		payload = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, payload)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{Status: resp.StatusCode, Message: extractMessage(raw)}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

func (c *Client) Get(ctx context.Context, path, token string, out interface{}) error {
	return c.Do(ctx, http.MethodGet, path, token, nil, out)
}

func (c *Client) Post(ctx context.Context, path, token string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPost, path, token, body, out)
}

func (c *Client) Put(ctx context.Context, path, token string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPut, path, token, body, out)
}

func (c *Client) Patch(ctx context.Context, path, token string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPatch, path, token, body, out)
}

// Delete allows a JSON body: the bulk endpoints take an id array on DELETE.
func (c *Client) Delete(ctx context.Context, path, token string, body, out interface{}) error {
	return c.Do(ctx, http.MethodDelete, path, token, body, out)
}

func extractMessage(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	var envelope errorBody
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return ""
	}
	if len(envelope.Detail) > 0 {
		var detail string
		if err := json.Unmarshal(envelope.Detail, &detail); err == nil {
			return detail
		}
		// Validation errors arrive as structured arrays; keep them readable.
		return string(envelope.Detail)
	}
	return envelope.Message
}
