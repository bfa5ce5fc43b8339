package chat

import (
	"context"
	"fmt"

	"github.com/reverseludo/admin-api/internal/domain"
	"github.com/reverseludo/admin-api/internal/logger"
	"github.com/reverseludo/admin-api/internal/metrics"
	"github.com/reverseludo/admin-api/internal/repository"
	"github.com/reverseludo/admin-api/internal/sse"
)

// Broadcaster pushes live events to connected dashboard clients.
type Broadcaster interface {
	Broadcast(eventType string, payload interface{})
}

// Service defines the interface for support chat administration. Threads
// are opened by players from the game client; admins read, reply, and
// close them.
type Service interface {
	ListChats(ctx context.Context, filter repository.ChatFilter) ([]domain.AdminChat, error)

	// OpenThread returns a thread's messages and clears its unread flag.
	OpenThread(ctx context.Context, chatID string) ([]domain.ChatMessage, error)

	// SendMessage appends an admin reply and broadcasts it over SSE.
	SendMessage(ctx context.Context, chatID, text string) (*domain.ChatMessage, error)

	SetStatus(ctx context.Context, chatID string, status domain.ChatStatus) (*domain.AdminChat, error)
}

type service struct {
	repo repository.Chat
	hub  Broadcaster
}

// NewService creates a new chat service.
func NewService(repo repository.Chat, hub Broadcaster) Service {
	return &service{repo: repo, hub: hub}
}

func (s *service) ListChats(ctx context.Context, filter repository.ChatFilter) ([]domain.AdminChat, error) {
	switch filter {
	case "", repository.ChatFilterAll:
		filter = repository.ChatFilterAll
	case repository.ChatFilterUnread, repository.ChatFilterOpen, repository.ChatFilterClosed:
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidChatFilter, filter)
	}
	return s.repo.ListChats(ctx, filter)
}

func (s *service) OpenThread(ctx context.Context, chatID string) ([]domain.ChatMessage, error) {
	log := logger.FromContext(ctx)

	chat, err := s.repo.GetChatByID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	messages, err := s.repo.ListMessages(ctx, chatID)
	if err != nil {
		return nil, err
	}

	if chat.UnreadByAdmin {
		if err := s.repo.MarkReadByAdmin(ctx, chatID); err != nil {
			// The messages are already loaded; a failed flag update only
			// affects the list badge.
			log.Warn("failed to clear unread flag", "chat_id", chatID, "error", err)
		} else {
			s.hub.Broadcast(sse.EventTypeChatUpdated, sse.ChatUpdatedPayload{
				ChatID:        chatID,
				Status:        string(chat.Status),
				UnreadByAdmin: false,
				LastMessage:   chat.LastMessage,
			})
		}
	}

	return messages, nil
}

func (s *service) SendMessage(ctx context.Context, chatID, text string) (*domain.ChatMessage, error) {
	log := logger.FromContext(ctx)

	chat, err := s.repo.GetChatByID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	msg := &domain.ChatMessage{
		ChatID:     chatID,
		SenderType: domain.SenderAdmin,
		Message:    text,
	}
	if err := s.repo.AppendMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to append message: %w", err)
	}

	s.hub.Broadcast(sse.EventTypeChatMessage, sse.ChatMessagePayload{
		ChatID:     chatID,
		SenderType: string(domain.SenderAdmin),
		Message:    text,
	})
	s.hub.Broadcast(sse.EventTypeChatUpdated, sse.ChatUpdatedPayload{
		ChatID:        chatID,
		Status:        string(chat.Status),
		UnreadByAdmin: false,
		LastMessage:   text,
	})

	metrics.RecordChatMessage(string(domain.SenderAdmin))
	log.Info("admin reply sent", "chat_id", chatID)
	return msg, nil
}

func (s *service) SetStatus(ctx context.Context, chatID string, status domain.ChatStatus) (*domain.AdminChat, error) {
	log := logger.FromContext(ctx)

	if !status.Valid() {
		return nil, fmt.Errorf("%w: got %q", domain.ErrInvalidChatStatus, status)
	}

	chat, err := s.repo.SetStatus(ctx, chatID, status)
	if err != nil {
		return nil, err
	}

	s.hub.Broadcast(sse.EventTypeChatUpdated, sse.ChatUpdatedPayload{
		ChatID:        chatID,
		Status:        string(chat.Status),
		UnreadByAdmin: chat.UnreadByAdmin,
		LastMessage:   chat.LastMessage,
	})

	log.Info("chat status changed", "chat_id", chatID, "status", status)
	return chat, nil
}
