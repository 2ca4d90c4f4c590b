package models

import "time"

// Session represents an authenticated browser session. The session owns the
// upstream bearer token; handlers never read the token from anywhere else.
// Lifecycle: anonymous -> authenticated -> loggedOut/expired.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IsAdmin reports whether the session's user holds the ADMIN role.
func (s *Session) IsAdmin() bool {
	return s != nil && s.User.Role == "ADMIN"
}
