package itemControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Pen-Clock/BodiaStore/cache"
	"github.com/Pen-Clock/BodiaStore/models"
)

// DELETE /admin/items/:item_id
func DeleteItem(db *gorm.DB, store cache.TagCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item_id"})
			return
		}

		result := db.Where("item_id = ?", itemID).Delete(&models.Item{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}

		store.Invalidate(c.Request.Context(), cache.TagItems)
		c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
	}
}
