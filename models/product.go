package models

import "time"

type Product struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string  `gorm:"not null" json:"name"`
	Description   string  `json:"description"`
	Price         float64 `gorm:"not null" json:"price"`
	Stock         int     `gorm:"not null;default:0" json:"stock"` // never negative
	ImageURL      string  `json:"image_url"`
	SubCategoryID uint    `gorm:"index;not null" json:"sub_category_id"`
	UserID        *uint   `json:"user_id,omitempty"` // owning seller, if any
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
