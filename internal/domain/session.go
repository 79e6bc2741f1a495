package domain

import "time"

// Session is the client-held proof of authentication against the shop API,
// persisted per Telegram chat so it survives restarts.
type Session struct {
	Token     string
	SessionID string
	User      *Profile
	CreatedAt time.Time
}

// Authenticated reports whether the session carries a usable token.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

// Username returns the cached profile name, or a fallback when the stored
// profile was lost or unreadable.
func (s *Session) Username() string {
	if s == nil || s.User == nil || s.User.Username == "" {
		return "there"
	}
	return s.User.Username
}
