package models

import "time"

// GuestSession identifies an anonymous cart owner.
type GuestSession struct {
	Token     string    `gorm:"primaryKey" json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
