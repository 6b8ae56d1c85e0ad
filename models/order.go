package models

import "time"

type Order struct {
	ID            uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserEmail     string      `gorm:"index;not null" json:"user_email"`
	State         string      `json:"state"`
	City          string      `json:"city"`
	Address       string      `json:"address"`
	PhoneNumber   string      `json:"phone_number"`
	PaymentMethod string      `json:"payment_method"` // e.g. "card", "paypal"
	TransactionID string      `json:"transaction_id,omitempty"`
	CardLast4     string      `json:"card_last4,omitempty"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt     time.Time   `json:"created_at"`
}

// OrderItem is a frozen snapshot taken at purchase time. ProductID is kept for
// reference only; the row must survive deletion of the product.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     uint    `gorm:"index" json:"order_id"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}
