package domain

import "time"

// User represents a player row as stored by the game backend.
// The admin API mutates balances, owned items and the mailbox but never
// deletes users.
type User struct {
	UID             string    `json:"uid"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	TotalCoins      int64     `json:"total_coins"`
	TotalDiamonds   int64     `json:"total_diamonds"`
	OwnedItems      []string  `json:"owned_items"`
	Mailbox         []Mail    `json:"mailbox"`
	ProfileImageURL string    `json:"profile_image_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Mail is one entry in a user's mailbox, newest first.
type Mail struct {
	MailType  string    `json:"mail_type"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Seen      bool      `json:"seen"`
}

// Mail type constants
const (
	MailTypeGeneral = "general"
	MailTypeReward  = "reward"
)

// UserSummary is the normalized shape returned by the admin user list.
type UserSummary struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	Coins           int64     `json:"coins"`
	Diamonds        int64     `json:"diamonds"`
	ProfileImageURL string    `json:"profile_image_url"`
	CreatedAt       time.Time `json:"created_at"`
}

// Summary converts a full user row into the normalized admin list shape.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:              u.UID,
		Username:        u.Username,
		Email:           u.Email,
		Coins:           u.TotalCoins,
		Diamonds:        u.TotalDiamonds,
		ProfileImageURL: u.ProfileImageURL,
		CreatedAt:       u.CreatedAt,
	}
}
