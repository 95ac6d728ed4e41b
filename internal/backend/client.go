// Package backend is the typed REST client for the Storm API. Every data
// operation of the dashboard goes through it: requests carry the static
// API key, forward the caller's opaque session token as a cookie, and are
// bounded by the request context. No retries, no caching.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/stormhq/storm-admin/auth"
	"github.com/stormhq/storm-admin/internal/config"
	"github.com/stormhq/storm-admin/internal/middleware"
)

// FieldError is one entry of a validation failure payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is a non-2xx response from the backend. Message carries the
// server-supplied error verbatim when present; callers surface it as-is
// and fall back to a localized generic message when empty.
type APIError struct {
	StatusCode int
	Message    string
	Details    []FieldError
	// IsFirstAccess flags a login rejected because the account still uses
	// its server-issued temporary password.
	IsFirstAccess bool
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("storm api: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("storm api: status %d", e.StatusCode)
}

// Client talks to the Storm API.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// New creates a client from API configuration. The transport timeout is
// the only bound on a call beyond its context; no retry layer sits on top.
func New(cfg config.APIConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.Key,
		httpc:   &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second},
	}
}

// do performs one API call. The session token, when present in ctx, is
// forwarded as the token cookie; out, when non-nil, receives the decoded
// 2xx body.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}
	if rid, ok := middleware.RequestIDFromContext(ctx); ok {
		req.Header.Set("X-Request-ID", rid)
	}
	if token, ok := auth.TokenFromContext(ctx); ok {
		req.AddCookie(&http.Cookie{Name: auth.TokenCookie, Value: token})
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("storm api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var payload struct {
		Error         string       `json:"error"`
		Details       []FieldError `json:"details"`
		IsFirstAccess bool         `json:"isFirstAccess"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&payload); err == nil {
		apiErr.Message = payload.Error
		apiErr.Details = payload.Details
		apiErr.IsFirstAccess = payload.IsFirstAccess
	}
	return apiErr
}

// Message extracts a display message from err: the server's own words for
// an APIError with a message, otherwise empty so the caller picks its
// localized fallback.
func Message(err error) string {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Message
	}
	return ""
}
