package models

import "time"

type Customer struct {
	CustomerID uint      `gorm:"primaryKey;autoIncrement" json:"customer_id"`
	Name       string    `gorm:"not null" json:"name"`
	Orders     []Order   `gorm:"foreignKey:CustomerID" json:"orders,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
