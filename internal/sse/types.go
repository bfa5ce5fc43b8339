package sse

// ChatMessagePayload is the SSE payload for a new message in a support
// thread.
type ChatMessagePayload struct {
	ChatID     string `json:"chat_id"`
	SenderType string `json:"sender_type"`
	Message    string `json:"message"`
}

// ChatUpdatedPayload is the SSE payload for thread-level changes: status
// moves, read flags, last-message bumps.
type ChatUpdatedPayload struct {
	ChatID        string `json:"chat_id"`
	Status        string `json:"status"`
	UnreadByAdmin bool   `json:"unread_by_admin"`
	LastMessage   string `json:"last_message,omitempty"`
}
