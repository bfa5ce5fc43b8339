package repository

import (
	"context"

	"github.com/reverseludo/admin-api/internal/domain"
)

// ChatFilter narrows the thread list.
type ChatFilter string

const (
	ChatFilterAll    ChatFilter = "all"
	ChatFilterUnread ChatFilter = "unread"
	ChatFilterOpen   ChatFilter = "open"
	ChatFilterClosed ChatFilter = "closed"
)

// Chat defines the interface for support chat persistence.
type Chat interface {
	ListChats(ctx context.Context, filter ChatFilter) ([]domain.AdminChat, error)
	GetChatByID(ctx context.Context, id string) (*domain.AdminChat, error)
	MarkReadByAdmin(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status domain.ChatStatus) (*domain.AdminChat, error)

	ListMessages(ctx context.Context, chatID string) ([]domain.ChatMessage, error)

	// AppendMessage inserts the message and bumps the thread's updated_at
	// and last_message.
	AppendMessage(ctx context.Context, msg *domain.ChatMessage) error
}
