package models

import "time"

type Item struct {
	ItemID      uint      `gorm:"primaryKey;autoIncrement" json:"item_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null" json:"price"` // Current catalog price; cart lines snapshot it
	ImagePath   string    `json:"image_path"`            // Absolute http(s) URL or root-relative path
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
