package models

import "time"

// CartEntry is keyed by (identity, product). Exactly one of UserEmail or
// SessionToken is set per row.
type CartEntry struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserEmail    *string   `gorm:"index" json:"user_email,omitempty"`
	SessionToken *string   `gorm:"index" json:"session_token,omitempty"`
	ProductID    uint      `gorm:"index;not null" json:"product_id"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	AddedAt      time.Time `json:"added_at"`
}
