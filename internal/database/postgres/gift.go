package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reverseludo/admin-api/internal/domain"
)

// GiftHistoryRepository implements the gift audit log for PostgreSQL.
type GiftHistoryRepository struct {
	db *pgxpool.Pool
}

// NewGiftHistoryRepository creates a new GiftHistoryRepository.
func NewGiftHistoryRepository(db *pgxpool.Pool) *GiftHistoryRepository {
	return &GiftHistoryRepository{db: db}
}

// InsertRecord appends one gift audit row.
func (r *GiftHistoryRepository) InsertRecord(ctx context.Context, record *domain.GiftRecord) error {
	query := `
		INSERT INTO gift_history (admin_id, user_id, gift_type, item_id, item_name, amount, message)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		record.AdminID, record.UserID, record.GiftType, record.ItemID,
		record.ItemName, record.Amount, record.Message).
		Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert gift record: %w", err)
	}
	return nil
}

// ListRecent returns the most recent gift records, newest first.
func (r *GiftHistoryRepository) ListRecent(ctx context.Context, limit int) ([]domain.GiftRecord, error) {
	query := `
		SELECT id, admin_id, user_id, gift_type, COALESCE(item_id, ''), COALESCE(item_name, ''),
		       amount, message, created_at
		FROM gift_history
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list gift history: %w", err)
	}
	return collectRows(rows, func(rows pgx.Rows) (domain.GiftRecord, error) {
		var rec domain.GiftRecord
		err := rows.Scan(&rec.ID, &rec.AdminID, &rec.UserID, &rec.GiftType,
			&rec.ItemID, &rec.ItemName, &rec.Amount, &rec.Message, &rec.CreatedAt)
		return rec, err
	})
}
