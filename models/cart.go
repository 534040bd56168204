package models

import "time"

// CartLine is one (customer, item) row in the cart. The composite primary
// key enforces at most one line per pair; quantity is always >= 1 — any
// mutation that would take it to zero or below deletes the row instead.
// Price is the snapshot taken when the line was first created, not a live
// reference to the item's current price.
type CartLine struct {
	CustomerID uint      `gorm:"primaryKey;autoIncrement:false" json:"customer_id"`
	ItemID     uint      `gorm:"primaryKey;autoIncrement:false" json:"item_id"`
	Price      float64   `gorm:"not null" json:"price"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	AddedAt    time.Time `json:"added_at"`
}
