package domain

import "time"

// BonusType is the kind of reward granted for a daily login day.
type BonusType string

const (
	BonusTypeCoin           BonusType = "coin"
	BonusTypeDiamond        BonusType = "diamond"
	BonusTypeToken          BonusType = "token"
	BonusTypeBoard          BonusType = "board"
	BonusTypeFreeSpin       BonusType = "free_spin"
	BonusTypeFree7RoyaleSpin BonusType = "free_7_royale_spin"
)

// Valid reports whether b is one of the known bonus types.
func (b BonusType) Valid() bool {
	switch b {
	case BonusTypeCoin, BonusTypeDiamond, BonusTypeToken, BonusTypeBoard,
		BonusTypeFreeSpin, BonusTypeFree7RoyaleSpin:
		return true
	}
	return false
}

// IsItemReward reports whether the bonus grants an inventory item rather
// than a flat quantity. Item rewards reference an InventoryItem by
// TokenStyle and derive their preview image from it.
func (b BonusType) IsItemReward() bool {
	return b == BonusTypeToken || b == BonusTypeBoard
}

// DailyBonusReward is one row of the 7-day login reward calendar.
// Exactly one row exists per DayNumber in [1,7]; day 7 is presented as the
// jackpot by clients but has no schema-level distinction.
type DailyBonusReward struct {
	ID           int64     `json:"id"`
	DayNumber    int       `json:"day_number"`
	BonusType    BonusType `json:"bonus_type"`
	Quantity     int       `json:"quantity"`
	TokenStyle   string    `json:"token_style,omitempty"`
	DurationDays *int      `json:"duration_days"` // nil = permanent
	ItemImageURL string    `json:"item_image_url,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Preview image preference chains per item reward type. The first slot key
// present in the referenced item's image map wins; if none match, the first
// value in slot-key order is used.
var (
	TokenPreviewChain = []string{"red", "blue", "green", "yellow", "thumbnail", "preview"}
	BoardPreviewChain = []string{"4playerBoard", "board", "preview", "thumbnail"}
)

// PreviewImage picks the representative preview URL for an item reward from
// an item's image map, following the ordered preference chain for the bonus
// type. Returns "" when the map is empty or the type takes no item preview.
func PreviewImage(b BonusType, images map[string]string) string {
	var chain []string
	switch b {
	case BonusTypeToken:
		chain = TokenPreviewChain
	case BonusTypeBoard:
		chain = BoardPreviewChain
	default:
		return ""
	}

	for _, key := range chain {
		if url, ok := images[key]; ok && url != "" {
			return url
		}
	}

	// Fall back to any stored image, scanning recognized slot keys in a
	// stable order before giving up.
	for _, keys := range [][]string{TokenSlotKeys, BoardSlotKeys, DiceSlotKeys} {
		for _, key := range keys {
			if url, ok := images[key]; ok && url != "" {
				return url
			}
		}
	}
	for _, url := range images {
		if url != "" {
			return url
		}
	}
	return ""
}
