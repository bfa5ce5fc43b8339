package domain

import "time"

// PromotionApp is a cross-promoted application shown inside the game client.
type PromotionApp struct {
	ID           int64     `json:"id"`
	AppName      string    `json:"app_name"`
	Description  string    `json:"description"`
	MainImage    string    `json:"main_image"`
	StoreURL     string    `json:"store_url"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}
