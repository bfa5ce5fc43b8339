package domain

import "time"

// GiftType is the kind of gift an admin can send to a user.
type GiftType string

const (
	GiftItem     GiftType = "item"
	GiftCoins    GiftType = "coins"
	GiftDiamonds GiftType = "diamonds"
)

// Valid reports whether g is one of the known gift types.
func (g GiftType) Valid() bool {
	switch g {
	case GiftItem, GiftCoins, GiftDiamonds:
		return true
	}
	return false
}

// GiftRecord is an append-only audit row for a delivered gift. Recording is
// best effort: a failed insert never fails the gift itself.
type GiftRecord struct {
	ID        int64     `json:"id"`
	AdminID   string    `json:"admin_id"`
	UserID    string    `json:"user_id"`
	GiftType  GiftType  `json:"gift_type"`
	ItemID    string    `json:"item_id,omitempty"`
	ItemName  string    `json:"item_name,omitempty"`
	Amount    int64     `json:"amount,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
