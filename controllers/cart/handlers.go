package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Pen-Clock/BodiaStore/cache"
	"github.com/Pen-Clock/BodiaStore/middleware"
	"github.com/Pen-Clock/BodiaStore/pricing"
)

type addItemInput struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type setQuantityInput struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity"`
}

// POST /cart
func AddItemHandler(db *gorm.DB, store cache.TagCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := middleware.CustomerID(c)

		var input addItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		line, err := AddItem(c.Request.Context(), db, store, customerID, input.ItemID, input.Quantity)
		if err != nil {
			if errors.Is(err, pricing.ErrItemNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Item does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusCreated, line)
	}
}

// POST /cart/bulk
func AddItemsHandler(db *gorm.DB, store cache.TagCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := middleware.CustomerID(c)

		var inputs []LineInput
		if err := c.ShouldBindJSON(&inputs); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		lines, err := AddItems(c.Request.Context(), db, store, customerID, inputs)
		if err != nil {
			if errors.Is(err, pricing.ErrItemNotFound) || errors.Is(err, errNonPositiveQuantity) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add items to cart"})
			return
		}
		c.JSON(http.StatusCreated, lines)
	}
}

// PUT /cart
func SetQuantityHandler(db *gorm.DB, store cache.TagCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := middleware.CustomerID(c)

		var input setQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		line, err := SetQuantity(c.Request.Context(), db, store, customerID, input.ItemID, input.Quantity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		if line == nil {
			c.JSON(http.StatusOK, gin.H{"message": "Cart line removed"})
			return
		}
		c.JSON(http.StatusOK, line)
	}
}

// PUT /cart/bulk
func SetQuantitiesHandler(db *gorm.DB, store cache.TagCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := middleware.CustomerID(c)

		var inputs []LineInput
		if err := c.ShouldBindJSON(&inputs); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := SetQuantities(c.Request.Context(), db, store, customerID, inputs); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
	}
}

// DELETE /cart/:item_id
func RemoveItemHandler(db *gorm.DB, store cache.TagCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := middleware.CustomerID(c)

		itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item_id"})
			return
		}

		if err := RemoveItem(c.Request.Context(), db, store, customerID, uint(itemID)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /cart
func ClearHandler(db *gorm.DB, store cache.TagCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := middleware.CustomerID(c)

		if err := Clear(c.Request.Context(), db, store, customerID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /cart
func ListHandler(db *gorm.DB, store cache.TagCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := middleware.CustomerID(c)

		details, err := ListWithDetails(c.Request.Context(), db, store, customerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, details)
	}
}
