package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// TokenSource returns the current bearer token, or "" when unauthenticated.
// It is consulted before every outgoing request so a login that lands
// mid-session takes effect immediately.
type TokenSource func() string

// Client issues typed requests against the calorie-tracker API and unwraps
// the {success, data, message, errors} envelope. Failures propagate as
// *Error carrying the server's message; there are no retries and no
// timeout policy beyond the injected http.Client's.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Token   TokenSource
	Log     *zap.Logger
}

func NewClient(baseURL string, token TokenSource, log *zap.Logger) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    http.DefaultClient,
		Token:   token,
		Log:     log,
	}
}

// Error is a failed API call: the HTTP status plus whatever the server put
// in the envelope. Message is always usable as a user-facing string.
type Error struct {
	Status  int
	Message string
	Errors  []ValidationError
}

func (e *Error) Error() string { return e.Message }

// NotFound reports whether the failure was an unknown-id style 404.
func (e *Error) NotFound() bool { return e.Status == http.StatusNotFound }

// Unauthorized reports a bad-credentials or bad-token failure.
func (e *Error) Unauthorized() bool { return e.Status == http.StatusUnauthorized }

type envelope struct {
	Success bool              `json:"success"`
	Data    json.RawMessage   `json:"data"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return fmt.Errorf("constructing request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%s %s: decoding response envelope: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = resp.Status
		}
		c.Log.Debug("api call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", msg))
		return &Error{Status: resp.StatusCode, Message: msg, Errors: env.Errors}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%s %s: decoding data payload: %w", method, path, err)
		}
	}
	return nil
}

// ErrorMessage extracts a user-presentable message from any error returned
// by this package, falling back when the error carries nothing better.
func ErrorMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
