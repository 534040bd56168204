package orderControllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Pen-Clock/BodiaStore/cache"
	"github.com/Pen-Clock/BodiaStore/middleware"
	"github.com/Pen-Clock/BodiaStore/models"
)

// GET /orders
// The customer's receipts: orders with their lines and payment, newest
// first. Cached under the orders tag; checkout invalidates it.
func GetCustomerOrders(db *gorm.DB, store cache.TagCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := middleware.CustomerID(c)

		var orders []models.Order
		key := fmt.Sprintf("orders:customer:%d", customerID)
		err := store.GetOrCompute(c.Request.Context(), key, []string{cache.TagOrders}, &orders, func() (interface{}, error) {
			var rows []models.Order
			err := db.
				Preload("Lines").
				Preload("Payment").
				Where("customer_id = ?", customerID).
				Order("created_at DESC").
				Find(&rows).Error
			return rows, err
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Lines").
			Preload("Payment").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
