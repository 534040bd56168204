package checkoutControllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Pen-Clock/BodiaStore/cache"
	"github.com/Pen-Clock/BodiaStore/identity"
	"github.com/Pen-Clock/BodiaStore/metrics"
	"github.com/Pen-Clock/BodiaStore/middleware"
	"github.com/Pen-Clock/BodiaStore/models"
)

// ErrEmptyCheckoutSet means none of the requested item ids are in the
// customer's cart (which includes the cart being empty). Nothing is
// charged and nothing changes.
var ErrEmptyCheckoutSet = errors.New("no cart lines to check out")

type Result struct {
	OrderID    uint    `json:"order_id"`
	OrderRef   string  `json:"order_ref"`
	AmountPaid float64 `json:"amount_paid"`
}

func newOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// Checkout converts the customer's cart lines for itemIDs into one order,
// one order line per cart line, and one payment, then deletes exactly the
// consumed cart lines — all inside a single transaction. Ids not present
// in the cart are silently ignored; an empty intersection aborts with
// ErrEmptyCheckoutSet. Any failure rolls the whole transaction back: no
// order, no payment, no cart deletion survives a partial failure.
func Checkout(ctx context.Context, db *gorm.DB, store cache.TagCache, customerID uint, itemIDs []uint) (Result, error) {
	if _, err := identity.EnsureCustomer(db, customerID); err != nil {
		return Result{}, err
	}

	var result Result
	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var lines []models.CartLine
		if err := tx.Where("customer_id = ? AND item_id IN ?", customerID, itemIDs).
			Find(&lines).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCheckoutSet
		}

		var total float64
		for _, line := range lines {
			total += line.Price * float64(line.Quantity)
		}

		order = models.Order{
			OrderRef:   newOrderRef(),
			CustomerID: customerID,
			TotalPrice: total,
			CreatedAt:  time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		orderLines := make([]models.OrderLine, 0, len(lines))
		consumed := make([]uint, 0, len(lines))
		for _, line := range lines {
			orderLines = append(orderLines, models.OrderLine{
				OrderID:   order.OrderID,
				ItemID:    line.ItemID,
				UnitPrice: line.Price,
				Quantity:  line.Quantity,
			})
			consumed = append(consumed, line.ItemID)
		}
		if err := tx.Create(&orderLines).Error; err != nil {
			return err
		}

		payment := models.Payment{
			OrderID:   order.OrderID,
			Amount:    total,
			CreatedAt: time.Now(),
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		// Delete exactly the lines read above; lines outside itemIDs
		// survive untouched.
		if err := tx.Where("customer_id = ? AND item_id IN ?", customerID, consumed).
			Delete(&models.CartLine{}).Error; err != nil {
			return err
		}

		order.Lines = orderLines
		order.Payment = &payment
		result = Result{OrderID: order.OrderID, OrderRef: order.OrderRef, AmountPaid: total}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	// Strictly after commit: stale caches, metrics, live feed.
	store.Invalidate(ctx, cache.TagCart, cache.TagOrders)
	metrics.Checkouts.Inc()
	metrics.CheckoutAmount.Add(result.AmountPaid)
	broadcastOrder(order)

	return result, nil
}

type checkoutInput struct {
	ItemIDs []uint `json:"item_ids" binding:"required"`
}

// POST /checkout
func CheckoutHandler(db *gorm.DB, store cache.TagCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := middleware.CustomerID(c)

		var input checkoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		result, err := Checkout(c.Request.Context(), db, store, customerID, input.ItemIDs)
		if err != nil {
			if errors.Is(err, ErrEmptyCheckoutSet) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "No items in cart to checkout"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
