package api

import (
	"context"
	"net/http"
	"time"

	"github.com/shopmate/shopmate/internal/domain"
)

type loginResponse struct {
	envelope
	Token     string          `json:"token"`
	User      *domain.Profile `json:"user"`
	SessionID string          `json:"session_id"`
}

// Login exchanges credentials for a session. A LogicalError carries the
// server's reason (bad credentials and the like).
func (c *Client) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/api/login", map[string]string{
		"username": username,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if err := resp.check("Login failed."); err != nil {
		return nil, err
	}
	return &domain.Session{
		Token:     resp.Token,
		SessionID: resp.SessionID,
		User:      resp.User,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Register creates an account and returns the server's notice on success.
func (c *Client) Register(ctx context.Context, username, email, password string) (string, error) {
	var resp envelope
	err := c.do(ctx, http.MethodPost, "/api/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return "", err
	}
	if err := resp.check("Registration failed."); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Logout tells the server to drop the session. Callers treat this as
// best-effort: the local session is cleared regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	var resp envelope
	if err := c.do(ctx, http.MethodPost, "/api/logout", nil, &resp); err != nil {
		return err
	}
	return resp.check("Logout failed.")
}
