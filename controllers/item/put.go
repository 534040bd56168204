package itemControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Pen-Clock/BodiaStore/cache"
	"github.com/Pen-Clock/BodiaStore/models"
)

type updateItemInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImagePath   *string  `json:"image_path"`
}

// PUT /admin/items/:item_id
// Partial update: only fields present in the body change. A price change
// never touches existing cart lines or order lines — those keep their
// snapshots.
func UpdateItem(db *gorm.DB, store cache.TagCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item_id"})
			return
		}

		var item models.Item
		if err := db.First(&item, "item_id = ?", itemID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}

		var input updateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Price != nil {
			if *input.Price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be non-negative"})
				return
			}
			updates["price"] = *input.Price
		}
		if input.ImagePath != nil {
			updates["image_path"] = NormalizeImagePath(*input.ImagePath)
		}
		if len(updates) == 0 {
			c.JSON(http.StatusOK, item)
			return
		}

		if err := db.Model(&item).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
			return
		}

		store.Invalidate(c.Request.Context(), cache.TagItems)
		c.JSON(http.StatusOK, item)
	}
}
