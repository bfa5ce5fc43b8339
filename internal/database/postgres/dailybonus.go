package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reverseludo/admin-api/internal/domain"
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// DailyBonusRepository implements the daily bonus repository for PostgreSQL.
type DailyBonusRepository struct {
	db *pgxpool.Pool
}

// NewDailyBonusRepository creates a new DailyBonusRepository.
func NewDailyBonusRepository(db *pgxpool.Pool) *DailyBonusRepository {
	return &DailyBonusRepository{db: db}
}

const rewardColumns = `id, day_number, bonus_type, quantity, COALESCE(token_style, ''),
	duration_days, COALESCE(item_image_url, ''), is_active, created_at, updated_at`

func scanReward(row pgx.Row) (*domain.DailyBonusReward, error) {
	var reward domain.DailyBonusReward
	err := row.Scan(&reward.ID, &reward.DayNumber, &reward.BonusType, &reward.Quantity,
		&reward.TokenStyle, &reward.DurationDays, &reward.ItemImageURL,
		&reward.IsActive, &reward.CreatedAt, &reward.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &reward, nil
}

// ListRewards returns all rewards ordered by day number.
func (r *DailyBonusRepository) ListRewards(ctx context.Context) ([]domain.DailyBonusReward, error) {
	query := fmt.Sprintf(`SELECT %s FROM daily_bonus_rewards ORDER BY day_number ASC`, rewardColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily bonus rewards: %w", err)
	}
	return collectRows(rows, func(rows pgx.Rows) (domain.DailyBonusReward, error) {
		reward, err := scanReward(rows)
		if err != nil {
			return domain.DailyBonusReward{}, err
		}
		return *reward, nil
	})
}

// GetRewardByID returns one reward.
func (r *DailyBonusRepository) GetRewardByID(ctx context.Context, id int64) (*domain.DailyBonusReward, error) {
	query := fmt.Sprintf(`SELECT %s FROM daily_bonus_rewards WHERE id = $1`, rewardColumns)
	reward, err := scanReward(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRewardNotFound
		}
		return nil, fmt.Errorf("failed to get daily bonus reward: %w", err)
	}
	return reward, nil
}

// InsertReward stores a new reward. The unique day_number constraint maps to
// domain.ErrDayTaken.
func (r *DailyBonusRepository) InsertReward(ctx context.Context, reward *domain.DailyBonusReward) error {
	query := `
		INSERT INTO daily_bonus_rewards
			(day_number, bonus_type, quantity, token_style, duration_days, item_image_url, is_active)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), $7)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		reward.DayNumber, reward.BonusType, reward.Quantity, reward.TokenStyle,
		reward.DurationDays, reward.ItemImageURL, reward.IsActive).
		Scan(&reward.ID, &reward.CreatedAt, &reward.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDayTaken
		}
		return fmt.Errorf("failed to insert daily bonus reward: %w", err)
	}
	return nil
}

// UpdateReward rewrites an existing reward row.
func (r *DailyBonusRepository) UpdateReward(ctx context.Context, reward *domain.DailyBonusReward) error {
	query := `
		UPDATE daily_bonus_rewards
		SET day_number = $2, bonus_type = $3, quantity = $4, token_style = NULLIF($5, ''),
		    duration_days = $6, item_image_url = NULLIF($7, ''), is_active = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		reward.ID, reward.DayNumber, reward.BonusType, reward.Quantity, reward.TokenStyle,
		reward.DurationDays, reward.ItemImageURL, reward.IsActive).
		Scan(&reward.CreatedAt, &reward.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrRewardNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDayTaken
		}
		return fmt.Errorf("failed to update daily bonus reward: %w", err)
	}
	return nil
}

// DeleteReward removes a reward by id.
func (r *DailyBonusRepository) DeleteReward(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, domain.ErrRewardNotFound,
		`DELETE FROM daily_bonus_rewards WHERE id = $1`, id)
}
