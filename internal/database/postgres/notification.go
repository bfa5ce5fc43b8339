package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reverseludo/admin-api/internal/domain"
)

// NotificationRepository implements the notification repository for PostgreSQL.
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new NotificationRepository.
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// ListRecent returns the most recent notifications, newest first.
func (r *NotificationRepository) ListRecent(ctx context.Context, limit int) ([]domain.Notification, error) {
	query := `
		SELECT id, user_id, title, message, type, COALESCE(tournament_id, ''), read, created_at
		FROM notifications
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return collectRows(rows, func(rows pgx.Rows) (domain.Notification, error) {
		var n domain.Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type,
			&n.TournamentID, &n.Read, &n.CreatedAt)
		return n, err
	})
}

// InsertBatch inserts one row per notification in a single batched round trip.
func (r *NotificationRepository) InsertBatch(ctx context.Context, notifications []domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO notifications (user_id, title, message, type, tournament_id, read)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)`
	for _, n := range notifications {
		batch.Queue(query, n.UserID, n.Title, n.Message, n.Type, n.TournamentID, n.Read)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range notifications {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert notification batch: %w", err)
		}
	}
	return nil
}
