package models

import "time"

// Order, OrderLine and Payment are created once, atomically, at checkout
// and never mutated afterwards — they are the permanent receipt. TotalPrice
// is computed from cart-line price snapshots at checkout time and is never
// recomputed from current item prices.
type Order struct {
	OrderID    uint        `gorm:"primaryKey;autoIncrement" json:"order_id"`
	OrderRef   string      `gorm:"uniqueIndex" json:"order_ref"`
	CustomerID uint        `gorm:"not null;index" json:"customer_id"`
	TotalPrice float64     `gorm:"not null" json:"total_price"`
	Lines      []OrderLine `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"lines,omitempty"`
	Payment    *Payment    `gorm:"foreignKey:OrderID" json:"payment,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

type OrderLine struct {
	OrderLineID uint    `gorm:"primaryKey;autoIncrement" json:"order_line_id"`
	OrderID     uint    `gorm:"not null;index" json:"order_id"`
	ItemID      uint    `gorm:"not null" json:"item_id"`
	UnitPrice   float64 `gorm:"not null" json:"unit_price"` // per-line snapshot for itemized receipts
	Quantity    int     `gorm:"not null" json:"quantity"`
}

// Payment is a local ledger row, not an external charge. Amount always
// equals the order total at creation time.
type Payment struct {
	PaymentID uint      `gorm:"primaryKey;autoIncrement" json:"payment_id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	Amount    float64   `gorm:"not null" json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
