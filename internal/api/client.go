package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shopmate/shopmate/internal/config"
)

// Client talks JSON to the remote shop API. The zero token means
// unauthenticated; WithToken derives an authorized copy for a session.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: config.RequestTimeout},
	}
}

// WithToken returns a copy of the client that sends the bearer token on
// every request. The underlying http.Client is shared.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// RequestError is a transport-level failure: the network was unreachable or
// the server answered with a non-2xx status. Message is always a
// human-readable string, never a raw transport error dump for status
// failures.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string { return e.Message }

// Unauthorized reports whether the server rejected the bearer token.
func (e *RequestError) Unauthorized() bool { return e.Status == http.StatusUnauthorized }

// LogicalError is a 2xx response whose body carries success=false. The
// transport worked; the operation did not.
type LogicalError struct {
	Message string
}

func (e *LogicalError) Error() string { return e.Message }

// envelope is the application-level outcome embedded in every response body.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// check converts success=false into a LogicalError, substituting the
// per-action fallback when the body carries no message of its own.
func (e envelope) check(fallback string) error {
	if e.Success {
		return nil
	}
	msg := e.Message
	if msg == "" {
		msg = fallback
	}
	return &LogicalError{Message: msg}
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestError{Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{Status: resp.StatusCode, Message: fmt.Sprintf("read response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RequestError{Status: resp.StatusCode, Message: errorMessage(data)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &RequestError{Status: resp.StatusCode, Message: "Unknown error"}
		}
	}
	return nil
}

// errorMessage extracts the {message} envelope from a failure body, falling
// back to a generic string when the body is not parseable.
func errorMessage(data []byte) string {
	var env struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return "Unknown error"
}
