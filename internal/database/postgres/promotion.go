package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reverseludo/admin-api/internal/domain"
)

// PromotionRepository implements the promoted app repository for PostgreSQL.
type PromotionRepository struct {
	db *pgxpool.Pool
}

// NewPromotionRepository creates a new PromotionRepository.
func NewPromotionRepository(db *pgxpool.Pool) *PromotionRepository {
	return &PromotionRepository{db: db}
}

const promotionColumns = `id, app_name, COALESCE(description, ''), COALESCE(main_image, ''),
	COALESCE(store_url, ''), is_active, display_order, created_at`

func scanPromotion(row pgx.Row) (*domain.PromotionApp, error) {
	var p domain.PromotionApp
	err := row.Scan(&p.ID, &p.AppName, &p.Description, &p.MainImage,
		&p.StoreURL, &p.IsActive, &p.DisplayOrder, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPromotions returns promotions by display order.
func (r *PromotionRepository) ListPromotions(ctx context.Context) ([]domain.PromotionApp, error) {
	query := fmt.Sprintf(`SELECT %s FROM promotion_apps ORDER BY display_order ASC, created_at DESC`, promotionColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}
	return collectRows(rows, func(rows pgx.Rows) (domain.PromotionApp, error) {
		p, err := scanPromotion(rows)
		if err != nil {
			return domain.PromotionApp{}, err
		}
		return *p, nil
	})
}

// InsertPromotion stores a new promoted app.
func (r *PromotionRepository) InsertPromotion(ctx context.Context, p *domain.PromotionApp) error {
	query := `
		INSERT INTO promotion_apps (app_name, description, main_image, store_url, is_active, display_order)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		p.AppName, p.Description, p.MainImage, p.StoreURL, p.IsActive, p.DisplayOrder).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert promotion: %w", err)
	}
	return nil
}

// UpdatePromotion rewrites a promoted app row and returns the result.
func (r *PromotionRepository) UpdatePromotion(ctx context.Context, p *domain.PromotionApp) (*domain.PromotionApp, error) {
	query := fmt.Sprintf(`
		UPDATE promotion_apps
		SET app_name = $2, description = NULLIF($3, ''),
		    main_image = COALESCE(NULLIF($4, ''), main_image),
		    store_url = NULLIF($5, ''), is_active = $6, display_order = $7
		WHERE id = $1
		RETURNING %s`, promotionColumns)

	updated, err := scanPromotion(r.db.QueryRow(ctx, query,
		p.ID, p.AppName, p.Description, p.MainImage, p.StoreURL, p.IsActive, p.DisplayOrder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPromotionNotFound
		}
		return nil, fmt.Errorf("failed to update promotion: %w", err)
	}
	return updated, nil
}

// DeletePromotion removes a promoted app by id.
func (r *PromotionRepository) DeletePromotion(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, domain.ErrPromotionNotFound,
		`DELETE FROM promotion_apps WHERE id = $1`, id)
}
