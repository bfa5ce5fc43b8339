package domain

import "time"

// ChatStatus is the open/closed state of a support thread.
type ChatStatus string

const (
	ChatOpen   ChatStatus = "open"
	ChatClosed ChatStatus = "closed"
)

// Valid reports whether s is a known chat status.
func (s ChatStatus) Valid() bool {
	return s == ChatOpen || s == ChatClosed
}

// SenderType identifies which side of a support thread wrote a message.
type SenderType string

const (
	SenderAdmin SenderType = "admin"
	SenderUser  SenderType = "user"
)

// AdminChat is a support conversation between one user and the admin team.
// UnreadByAdmin is set when the user writes and cleared when an admin opens
// the thread.
type AdminChat struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	Username      string     `json:"username"`
	Status        ChatStatus `json:"status"`
	UnreadByAdmin bool       `json:"unread_by_admin"`
	LastMessage   string     `json:"last_message"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ChatMessage is one message in a support thread. Messages are append-only
// and ordered by creation time.
type ChatMessage struct {
	ID         int64      `json:"id"`
	ChatID     string     `json:"chat_id"`
	SenderType SenderType `json:"sender_type"`
	Message    string     `json:"message"`
	CreatedAt  time.Time  `json:"created_at"`
}
