package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopmate/shopmate/internal/domain"
)

// SessionRepository is the durable store gating the chat surface: token,
// cached profile and server session id, kept per Telegram chat.
type SessionRepository interface {
	// Get returns the stored session or domain.ErrNoSession.
	Get(ctx context.Context, chatID int64) (*domain.Session, error)
	// Put stores the session, replacing any previous one for the chat.
	Put(ctx context.Context, chatID int64, sess *domain.Session) error
	// Clear removes the session. Removal is atomic: a concurrent Get sees
	// either the full session or nothing.
	Clear(ctx context.Context, chatID int64) error
}

type PostgresSessions struct {
	db *pgxpool.Pool
}

func NewPostgresSessions(db *pgxpool.Pool) *PostgresSessions {
	return &PostgresSessions{db: db}
}

func (r *PostgresSessions) Get(ctx context.Context, chatID int64) (*domain.Session, error) {
	var (
		token     string
		sessionID string
		profile   string
		createdAt time.Time
	)
	err := r.db.QueryRow(ctx,
		`SELECT token, session_id, profile, created_at FROM sessions WHERE chat_id = $1`,
		chatID,
	).Scan(&token, &sessionID, &profile, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoSession
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &domain.Session{
		Token:     token,
		SessionID: sessionID,
		User:      decodeProfile(profile),
		CreatedAt: createdAt,
	}, nil
}

func (r *PostgresSessions) Put(ctx context.Context, chatID int64, sess *domain.Session) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO sessions (chat_id, token, session_id, profile, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (chat_id) DO UPDATE
		 SET token = EXCLUDED.token,
		     session_id = EXCLUDED.session_id,
		     profile = EXCLUDED.profile,
		     created_at = EXCLUDED.created_at`,
		chatID, sess.Token, sess.SessionID, encodeProfile(sess.User), sess.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

func (r *PostgresSessions) Clear(ctx context.Context, chatID int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE chat_id = $1`, chatID); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func encodeProfile(p *domain.Profile) string {
	if p == nil {
		return ""
	}
	data, err := json.Marshal(p)
	if err != nil {
		return ""
	}
	return string(data)
}

// decodeProfile tolerates corrupt stored profiles: a blob that no longer
// parses yields an absent profile, not a dead chat surface.
func decodeProfile(raw string) *domain.Profile {
	if raw == "" {
		return nil
	}
	var p domain.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil
	}
	return &p
}
