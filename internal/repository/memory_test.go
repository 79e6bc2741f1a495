package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopmate/shopmate/internal/domain"
)

func TestMemorySessionsMissing(t *testing.T) {
	repo := NewMemorySessions()

	_, err := repo.Get(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestMemorySessionsRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessions()

	sess := &domain.Session{
		Token:     "tok",
		SessionID: "sid",
		User:      &domain.Profile{ID: 1, Username: "ada", Email: "ada@example.com"},
	}
	require.NoError(t, repo.Put(ctx, 42, sess))

	got, err := repo.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "tok", got.Token)
	assert.Equal(t, "sid", got.SessionID)
	require.NotNil(t, got.User)
	assert.Equal(t, "ada", got.User.Username)
}

func TestMemorySessionsClear(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessions()

	require.NoError(t, repo.Put(ctx, 42, &domain.Session{Token: "tok"}))
	require.NoError(t, repo.Clear(ctx, 42))

	_, err := repo.Get(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrNoSession)

	// Clearing an absent session is not an error.
	assert.NoError(t, repo.Clear(ctx, 42))
}

func TestMemorySessionsCorruptProfile(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessions()

	require.NoError(t, repo.Put(ctx, 42, &domain.Session{
		Token: "tok",
		User:  &domain.Profile{Username: "ada"},
	}))
	repo.CorruptProfile(42, "{not json")

	got, err := repo.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "tok", got.Token)
	assert.Nil(t, got.User)
	assert.Equal(t, "there", got.Username())
}
