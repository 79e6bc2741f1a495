package repository

import (
	"context"
	"sync"

	"github.com/shopmate/shopmate/internal/domain"
)

// MemorySessions is an in-memory SessionRepository. Profiles round-trip
// through the same JSON encoding as the Postgres store so corruption
// behavior matches.
type MemorySessions struct {
	mu       sync.RWMutex
	sessions map[int64]memoryRow
}

type memoryRow struct {
	sess    domain.Session
	profile string
}

func NewMemorySessions() *MemorySessions {
	return &MemorySessions{sessions: make(map[int64]memoryRow)}
}

func (r *MemorySessions) Get(ctx context.Context, chatID int64) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.sessions[chatID]
	if !ok {
		return nil, domain.ErrNoSession
	}
	sess := row.sess
	sess.User = decodeProfile(row.profile)
	return &sess, nil
}

func (r *MemorySessions) Put(ctx context.Context, chatID int64, sess *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *sess
	stored.User = nil
	r.sessions[chatID] = memoryRow{sess: stored, profile: encodeProfile(sess.User)}
	return nil
}

func (r *MemorySessions) Clear(ctx context.Context, chatID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, chatID)
	return nil
}

// CorruptProfile overwrites the stored profile blob, for tests exercising
// the malformed-profile recovery path.
func (r *MemorySessions) CorruptProfile(chatID int64, raw string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if row, ok := r.sessions[chatID]; ok {
		row.profile = raw
		r.sessions[chatID] = row
	}
}
