package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reverseludo/admin-api/internal/domain"
	"github.com/reverseludo/admin-api/internal/repository"
)

// ChatRepository implements the support chat repository for PostgreSQL.
type ChatRepository struct {
	db *pgxpool.Pool
}

// NewChatRepository creates a new ChatRepository.
func NewChatRepository(db *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{db: db}
}

const chatColumns = `id, user_id, username, status, unread_by_admin,
	COALESCE(last_message, ''), created_at, updated_at`

func scanChat(row pgx.Row) (*domain.AdminChat, error) {
	var chat domain.AdminChat
	err := row.Scan(&chat.ID, &chat.UserID, &chat.Username, &chat.Status,
		&chat.UnreadByAdmin, &chat.LastMessage, &chat.CreatedAt, &chat.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

// ListChats returns threads most recently active first, narrowed by filter.
func (r *ChatRepository) ListChats(ctx context.Context, filter repository.ChatFilter) ([]domain.AdminChat, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM admin_chats
		WHERE ($1 = 'all')
		   OR ($1 = 'unread' AND unread_by_admin)
		   OR ($1 = 'open' AND status = 'open')
		   OR ($1 = 'closed' AND status = 'closed')
		ORDER BY updated_at DESC`, chatColumns)

	rows, err := r.db.Query(ctx, query, string(filter))
	if err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}
	return collectRows(rows, func(rows pgx.Rows) (domain.AdminChat, error) {
		chat, err := scanChat(rows)
		if err != nil {
			return domain.AdminChat{}, err
		}
		return *chat, nil
	})
}

// GetChatByID returns one thread.
func (r *ChatRepository) GetChatByID(ctx context.Context, id string) (*domain.AdminChat, error) {
	query := fmt.Sprintf(`SELECT %s FROM admin_chats WHERE id = $1`, chatColumns)
	chat, err := scanChat(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidTextRepresentation(err) {
			return nil, domain.ErrChatNotFound
		}
		return nil, fmt.Errorf("failed to get chat: %w", err)
	}
	return chat, nil
}

// MarkReadByAdmin clears the unread flag on a thread.
func (r *ChatRepository) MarkReadByAdmin(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.db, domain.ErrChatNotFound,
		`UPDATE admin_chats SET unread_by_admin = FALSE WHERE id = $1`, id)
}

// SetStatus opens or closes a thread and returns the updated row.
func (r *ChatRepository) SetStatus(ctx context.Context, id string, status domain.ChatStatus) (*domain.AdminChat, error) {
	query := fmt.Sprintf(`
		UPDATE admin_chats
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING %s`, chatColumns)

	chat, err := scanChat(r.db.QueryRow(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidTextRepresentation(err) {
			return nil, domain.ErrChatNotFound
		}
		return nil, fmt.Errorf("failed to update chat status: %w", err)
	}
	return chat, nil
}

// ListMessages returns a thread's messages oldest first.
func (r *ChatRepository) ListMessages(ctx context.Context, chatID string) ([]domain.ChatMessage, error) {
	query := `
		SELECT id, chat_id, sender_type, message, created_at
		FROM admin_chat_messages
		WHERE chat_id = $1
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	return collectRows(rows, func(rows pgx.Rows) (domain.ChatMessage, error) {
		var msg domain.ChatMessage
		err := rows.Scan(&msg.ID, &msg.ChatID, &msg.SenderType, &msg.Message, &msg.CreatedAt)
		return msg, err
	})
}

// AppendMessage inserts the message and bumps the thread in one transaction.
// Admin messages clear the unread flag; user messages set it.
func (r *ChatRepository) AppendMessage(ctx context.Context, msg *domain.ChatMessage) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer SafeRollback(ctx, tx)

	insert := `
		INSERT INTO admin_chat_messages (chat_id, sender_type, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	err = tx.QueryRow(ctx, insert, msg.ChatID, msg.SenderType, msg.Message).
		Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}

	bump := `
		UPDATE admin_chats
		SET last_message = $2, unread_by_admin = $3, updated_at = NOW()
		WHERE id = $1`
	tag, err := tx.Exec(ctx, bump, msg.ChatID, msg.Message, msg.SenderType == domain.SenderUser)
	if err != nil {
		return fmt.Errorf("failed to bump chat thread: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrChatNotFound
	}

	return tx.Commit(ctx)
}
