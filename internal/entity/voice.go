package entity

import (
	"time"
)

// ActionLogEntry records the outcome of one dispatched voice command.
// Entries are kept newest first in a ring capped at 20.
type ActionLogEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Success   bool      `json:"success"`
}

// ProductSelection is the in-session size/quantity choice on the product
// detail view. Quantity never drops below 1.
type ProductSelection struct {
	ProductID    string `json:"product_id"`
	SelectedSize string `json:"selected_size"`
	Quantity     int    `json:"quantity"`
}

type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
}
