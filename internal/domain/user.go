package domain

// Profile is the user record cached from a successful login. The shop API
// owns the canonical copy; this is display data only.
type Profile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}
