package cartControllers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Pen-Clock/BodiaStore/cache"
	"github.com/Pen-Clock/BodiaStore/identity"
	"github.com/Pen-Clock/BodiaStore/metrics"
	"github.com/Pen-Clock/BodiaStore/models"
	"github.com/Pen-Clock/BodiaStore/pricing"
)

var errNonPositiveQuantity = errors.New("quantity must be positive")

// LineInput is one (item, quantity) pair for the bulk operations.
type LineInput struct {
	ItemID   uint `json:"item_id"`
	Quantity int  `json:"quantity"`
}

// CartDetail is the display row produced by ListWithDetails.
type CartDetail struct {
	ItemID    uint    `json:"item_id"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// cartUpsert merges a line into the cart at the store: insert, or on a
// (customer_id, item_id) conflict increment the existing quantity. The
// increment happens store-side, never read-modify-write in the app tier,
// so concurrent adds for the same key cannot lose updates. The price
// snapshot is NOT refreshed on merge — the first add's price wins until
// the line is removed or explicitly re-set.
var cartUpsert = clause.OnConflict{
	Columns: []clause.Column{{Name: "customer_id"}, {Name: "item_id"}},
	DoUpdates: clause.Assignments(map[string]interface{}{
		"quantity": gorm.Expr("cart_lines.quantity + excluded.quantity"),
	}),
}

// AddItem merges quantity into the customer's cart line for itemID,
// creating the line with the item's current price if it does not exist.
// Fails with pricing.ErrItemNotFound when the item does not exist.
func AddItem(ctx context.Context, db *gorm.DB, store cache.TagCache, customerID, itemID uint, quantity int) (models.CartLine, error) {
	if quantity <= 0 {
		return models.CartLine{}, errNonPositiveQuantity
	}
	if _, err := identity.EnsureCustomer(db, customerID); err != nil {
		return models.CartLine{}, err
	}

	price, err := pricing.Resolve(db, itemID)
	if err != nil {
		return models.CartLine{}, err
	}

	line := models.CartLine{
		CustomerID: customerID,
		ItemID:     itemID,
		Price:      price,
		Quantity:   quantity,
		AddedAt:    time.Now(),
	}
	if err := db.Clauses(cartUpsert).Create(&line).Error; err != nil {
		return models.CartLine{}, err
	}

	// The upsert leaves line holding the request quantity on a merge;
	// re-read so the caller gets the authoritative row.
	if err := db.First(&line, "customer_id = ? AND item_id = ?", customerID, itemID).Error; err != nil {
		return models.CartLine{}, err
	}

	store.Invalidate(ctx, cache.TagCart)
	metrics.CartMutations.WithLabelValues("add").Inc()
	return line, nil
}

// AddItems is the batch form of AddItem. All prices resolve in one query;
// any unresolved id fails the whole batch with pricing.ErrItemNotFound and
// no line is written. Every line uses the same merge-upsert as AddItem, so
// a batch add on an existing line increments it rather than duplicating.
func AddItems(ctx context.Context, db *gorm.DB, store cache.TagCache, customerID uint, inputs []LineInput) ([]models.CartLine, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	if _, err := identity.EnsureCustomer(db, customerID); err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(inputs))
	for _, in := range inputs {
		ids = append(ids, in.ItemID)
	}
	prices, err := pricing.ResolveMany(db, ids)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	lines := make([]models.CartLine, 0, len(inputs))
	for _, in := range inputs {
		if in.Quantity <= 0 {
			return nil, errNonPositiveQuantity
		}
		price, ok := prices[in.ItemID]
		if !ok {
			return nil, fmt.Errorf("item %d: %w", in.ItemID, pricing.ErrItemNotFound)
		}
		lines = append(lines, models.CartLine{
			CustomerID: customerID,
			ItemID:     in.ItemID,
			Price:      price,
			Quantity:   in.Quantity,
			AddedAt:    now,
		})
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for i := range lines {
			if err := tx.Clauses(cartUpsert).Create(&lines[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var merged []models.CartLine
	if err := db.Where("customer_id = ? AND item_id IN ?", customerID, ids).
		Order("item_id DESC").Find(&merged).Error; err != nil {
		return nil, err
	}

	store.Invalidate(ctx, cache.TagCart)
	metrics.CartMutations.WithLabelValues("add_bulk").Inc()
	return merged, nil
}

// SetQuantity overwrites a line's quantity. A non-positive quantity
// deletes the line instead (idempotent when the line is already gone).
// Returns nil when the line no longer exists.
func SetQuantity(ctx context.Context, db *gorm.DB, store cache.TagCache, customerID, itemID uint, quantity int) (*models.CartLine, error) {
	if quantity <= 0 {
		if err := db.Where("customer_id = ? AND item_id = ?", customerID, itemID).
			Delete(&models.CartLine{}).Error; err != nil {
			return nil, err
		}
		store.Invalidate(ctx, cache.TagCart)
		metrics.CartMutations.WithLabelValues("set").Inc()
		return nil, nil
	}

	res := db.Model(&models.CartLine{}).
		Where("customer_id = ? AND item_id = ?", customerID, itemID).
		Update("quantity", quantity)
	if res.Error != nil {
		return nil, res.Error
	}

	store.Invalidate(ctx, cache.TagCart)
	metrics.CartMutations.WithLabelValues("set").Inc()

	if res.RowsAffected == 0 {
		return nil, nil
	}
	var line models.CartLine
	if err := db.First(&line, "customer_id = ? AND item_id = ?", customerID, itemID).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

// SetQuantities applies the per-line delete-or-set rule of SetQuantity to
// every pair within one transaction — either every update lands or none
// does. The cache is invalidated once, after the commit.
func SetQuantities(ctx context.Context, db *gorm.DB, store cache.TagCache, customerID uint, inputs []LineInput) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, in := range inputs {
			if in.Quantity <= 0 {
				if err := tx.Where("customer_id = ? AND item_id = ?", customerID, in.ItemID).
					Delete(&models.CartLine{}).Error; err != nil {
					return err
				}
				continue
			}
			if err := tx.Model(&models.CartLine{}).
				Where("customer_id = ? AND item_id = ?", customerID, in.ItemID).
				Update("quantity", in.Quantity).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	store.Invalidate(ctx, cache.TagCart)
	metrics.CartMutations.WithLabelValues("set_bulk").Inc()
	return nil
}

// RemoveItem deletes the line if present. No error when absent.
func RemoveItem(ctx context.Context, db *gorm.DB, store cache.TagCache, customerID, itemID uint) error {
	if err := db.Where("customer_id = ? AND item_id = ?", customerID, itemID).
		Delete(&models.CartLine{}).Error; err != nil {
		return err
	}
	store.Invalidate(ctx, cache.TagCart)
	metrics.CartMutations.WithLabelValues("remove").Inc()
	return nil
}

// Clear deletes every line for the customer.
func Clear(ctx context.Context, db *gorm.DB, store cache.TagCache, customerID uint) error {
	if err := db.Where("customer_id = ?", customerID).Delete(&models.CartLine{}).Error; err != nil {
		return err
	}
	store.Invalidate(ctx, cache.TagCart)
	metrics.CartMutations.WithLabelValues("clear").Inc()
	return nil
}

// ListWithDetails joins the customer's cart lines with item name and image
// for display, newest catalog items first. Cached under both the cart and
// items tags: invalidating either forces a recompute.
func ListWithDetails(ctx context.Context, db *gorm.DB, store cache.TagCache, customerID uint) ([]CartDetail, error) {
	var details []CartDetail
	key := fmt.Sprintf("cart:details:%d", customerID)
	err := store.GetOrCompute(ctx, key, []string{cache.TagCart, cache.TagItems}, &details, func() (interface{}, error) {
		var rows []CartDetail
		err := db.Table("cart_lines").
			Select("cart_lines.item_id, items.name, items.image_path AS image, cart_lines.price AS unit_price, cart_lines.quantity").
			Joins("JOIN items ON items.item_id = cart_lines.item_id").
			Where("cart_lines.customer_id = ?", customerID).
			Order("cart_lines.item_id DESC").
			Scan(&rows).Error
		return rows, err
	})
	return details, err
}
