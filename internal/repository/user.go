package repository

import (
	"context"

	"github.com/reverseludo/admin-api/internal/domain"
)

// User defines the interface for user persistence.
type User interface {
	GetAllUsers(ctx context.Context) ([]domain.User, error)
	GetUserByUID(ctx context.Context, uid string) (*domain.User, error)
	ListUserIDs(ctx context.Context) ([]string, error)

	// SetBalances sets absolute coin/diamond balances. A nil pointer leaves
	// that balance untouched.
	SetBalances(ctx context.Context, uid string, coins, diamonds *int64) (*domain.User, error)

	// AddCoins / AddDiamonds apply a single atomic increment.
	AddCoins(ctx context.Context, uid string, amount int64) error
	AddDiamonds(ctx context.Context, uid string, amount int64) error

	// AppendOwnedItem appends an item id to the user's owned items list.
	// Duplicates are allowed.
	AppendOwnedItem(ctx context.Context, uid, itemID string) error

	// PrependMail atomically pushes a mail entry to the front of the user's
	// mailbox.
	PrependMail(ctx context.Context, uid string, mail domain.Mail) error
}
