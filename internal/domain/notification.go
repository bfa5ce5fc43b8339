package domain

import "time"

// Notification is one in-app notification row, created per target user by
// admin fan-out.
type Notification struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"user_id"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	Type         string    `json:"type"`
	TournamentID string    `json:"tournament_id,omitempty"`
	Read         bool      `json:"read"`
	CreatedAt    time.Time `json:"created_at"`
}

// NotificationTypeGeneral is the default notification type when none is given.
const NotificationTypeGeneral = "general"
