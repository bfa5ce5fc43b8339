package domain

import "time"

// DareCategory groups dare prompts by tone.
type DareCategory string

const (
	DareCasual DareCategory = "casual"
	DareFunny  DareCategory = "funny"
	DareLove   DareCategory = "love"
)

// Valid reports whether c is one of the known dare categories.
func (c DareCategory) Valid() bool {
	switch c {
	case DareCasual, DareFunny, DareLove:
		return true
	}
	return false
}

// Dare is a free-text prompt shown to players during dare games.
type Dare struct {
	ID        string       `json:"id"`
	DareText  string       `json:"dare_text"`
	Category  DareCategory `json:"category"`
	IsActive  bool         `json:"is_active"`
	CreatedAt time.Time    `json:"created_at"`
}
