package domain

import "time"

// Currency is a supported settlement currency.
type Currency struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"` // ISO-4217 style, uppercase
	Name      string    `json:"name"`
	Decimals  int       `json:"decimals"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
