package model

import "time"

// Session event types
const (
	EventLogin           = "login"
	EventLogout          = "logout"
	EventFavoriteAdded   = "favorite_added"
	EventFavoriteRemoved = "favorite_removed"
)

// SessionEvent is published after a session mutation
type SessionEvent struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	SessionID string    `json:"session_id"`
	Symbol    string    `json:"symbol,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
