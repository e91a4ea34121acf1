package models

import "time"

// Session is the durable client-side state of one signed-in browser: the
// upstream bearer token, the cached user snapshot, and the UI preferences.
// It is stored in Redis as one JSON value, so the token can never be
// observed without its user or vice versa.
type Session struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	User      *User     `json:"user"`
	Language  string    `json:"language,omitempty"`
	Theme     string    `json:"theme,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
