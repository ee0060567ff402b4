package domain

import "time"

// Product is a record owned by exactly one user. UserID is stamped from the
// authenticated identity at creation and never changes.
type Product struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Price     float64   `json:"price"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
