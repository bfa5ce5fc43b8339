package repository

import "context"

// AdminAccount defines the interface for admin credential lookup. Password
// hashes are bcrypt; the allow-list check happens before this is consulted.
type AdminAccount interface {
	GetPasswordHash(ctx context.Context, email string) (string, error)
}
