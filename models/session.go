package models

import "time"

// Session is the persisted authenticated-identity slot for one client.
// The browser carries only the opaque Token in an HttpOnly cookie; presence
// of a live session row implies the bearer previously presented valid
// credentials.
type Session struct {
	// Token is the random session identifier, unique per session.
	Token string `json:"-"`

	// Username is the authenticated identity the session was issued for.
	Username string `json:"username"`

	// CreatedAt is the timestamp when the session was established.
	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt is the instant after which the session is no longer valid.
	ExpiresAt time.Time `json:"expires_at"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// Expired reports whether the session is past its expiry at the given instant.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
