package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reverseludo/admin-api/internal/domain"
)

// UserRepository implements the user repository for PostgreSQL.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `uid, username, COALESCE(email, ''), total_coins, total_diamonds,
	owned_items, mailbox, COALESCE(profile_image_url, ''), created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u                 domain.User
		ownedRaw, mailRaw []byte
	)
	err := row.Scan(&u.UID, &u.Username, &u.Email, &u.TotalCoins, &u.TotalDiamonds,
		&ownedRaw, &mailRaw, &u.ProfileImageURL, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := scanJSON(ownedRaw, &u.OwnedItems); err != nil {
		return nil, err
	}
	if err := scanJSON(mailRaw, &u.Mailbox); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetAllUsers returns every user, newest first.
func (r *UserRepository) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY created_at DESC`, userColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return collectRows(rows, func(rows pgx.Rows) (domain.User, error) {
		u, err := scanUser(rows)
		if err != nil {
			return domain.User{}, err
		}
		return *u, nil
	})
}

// GetUserByUID returns one user by uid.
func (r *UserRepository) GetUserByUID(ctx context.Context, uid string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE uid = $1`, userColumns)
	u, err := scanUser(r.db.QueryRow(ctx, query, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidTextRepresentation(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// ListUserIDs returns every uid. Used by notification fan-out.
func (r *UserRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT uid FROM users`)
	if err != nil {
		return nil, fmt.Errorf("failed to list user ids: %w", err)
	}
	return collectRows(rows, func(rows pgx.Rows) (string, error) {
		var uid string
		err := rows.Scan(&uid)
		return uid, err
	})
}

// SetBalances sets absolute balances for the fields whose pointers are
// non-nil and returns the updated user.
func (r *UserRepository) SetBalances(ctx context.Context, uid string, coins, diamonds *int64) (*domain.User, error) {
	query := fmt.Sprintf(`
		UPDATE users
		SET total_coins    = COALESCE($2, total_coins),
		    total_diamonds = COALESCE($3, total_diamonds),
		    updated_at     = NOW()
		WHERE uid = $1
		RETURNING %s`, userColumns)

	u, err := scanUser(r.db.QueryRow(ctx, query, uid, coins, diamonds))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidTextRepresentation(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update balances: %w", err)
	}
	return u, nil
}

// AddCoins applies a single atomic coin increment.
func (r *UserRepository) AddCoins(ctx context.Context, uid string, amount int64) error {
	return execAffectingOne(ctx, r.db, domain.ErrUserNotFound,
		`UPDATE users SET total_coins = total_coins + $2, updated_at = NOW() WHERE uid = $1`,
		uid, amount)
}

// AddDiamonds applies a single atomic diamond increment.
func (r *UserRepository) AddDiamonds(ctx context.Context, uid string, amount int64) error {
	return execAffectingOne(ctx, r.db, domain.ErrUserNotFound,
		`UPDATE users SET total_diamonds = total_diamonds + $2, updated_at = NOW() WHERE uid = $1`,
		uid, amount)
}

// AppendOwnedItem appends an item id to the user's owned items. No duplicate
// check: gifting the same item twice stores it twice.
func (r *UserRepository) AppendOwnedItem(ctx context.Context, uid, itemID string) error {
	raw, err := marshalJSON([]string{itemID})
	if err != nil {
		return err
	}
	return execAffectingOne(ctx, r.db, domain.ErrUserNotFound,
		`UPDATE users
		 SET owned_items = COALESCE(owned_items, '[]'::jsonb) || $2::jsonb,
		     updated_at = NOW()
		 WHERE uid = $1`,
		uid, raw)
}

// PrependMail pushes a mail entry onto the front of the user's mailbox in a
// single statement, so concurrent deliveries cannot lose each other.
func (r *UserRepository) PrependMail(ctx context.Context, uid string, mail domain.Mail) error {
	raw, err := marshalJSON([]domain.Mail{mail})
	if err != nil {
		return err
	}
	return execAffectingOne(ctx, r.db, domain.ErrUserNotFound,
		`UPDATE users
		 SET mailbox = $2::jsonb || COALESCE(mailbox, '[]'::jsonb),
		     updated_at = NOW()
		 WHERE uid = $1`,
		uid, raw)
}
