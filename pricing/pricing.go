package pricing

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Pen-Clock/BodiaStore/models"
)

// ErrItemNotFound is returned when a price lookup references an item that
// does not exist in the catalog.
var ErrItemNotFound = errors.New("item not found")

// Resolve returns the current catalog price for one item.
func Resolve(db *gorm.DB, itemID uint) (float64, error) {
	var item models.Item
	if err := db.First(&item, "item_id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("item %d: %w", itemID, ErrItemNotFound)
		}
		return 0, err
	}
	return item.Price, nil
}

// ResolveMany returns a price per item id, covering exactly the ids that
// exist. Callers treat any id missing from the result as ErrItemNotFound —
// a cart mutation must never partially succeed on an unresolved id.
func ResolveMany(db *gorm.DB, itemIDs []uint) (map[uint]float64, error) {
	var items []models.Item
	if err := db.Where("item_id IN ?", itemIDs).Find(&items).Error; err != nil {
		return nil, err
	}
	prices := make(map[uint]float64, len(items))
	for _, item := range items {
		prices[item.ItemID] = item.Price
	}
	return prices, nil
}
