package models

import "time"

// SessionCookieName is the cookie carrying the session identifier.
const SessionCookieName = "session_id"

// SessionCookiePath is the path the session cookie is scoped to.
const SessionCookiePath = "/"

// Session is a server-side login session referenced by the session cookie.
type Session struct {
	ID        string    `json:"-"`
	UserID    int64     `json:"-"`
	Login     string    `json:"login"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
