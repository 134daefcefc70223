package model

import "time"

// Session is a server-side login session. Token carries the plaintext
// bearer token only on the create path so it can be set as a cookie; only
// TokenHash is ever persisted.
type Session struct {
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Token     string    `json:"-"`
	TokenHash string    `json:"-"`
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
}
