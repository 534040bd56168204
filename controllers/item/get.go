package itemControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Pen-Clock/BodiaStore/cache"
	"github.com/Pen-Clock/BodiaStore/models"
)

// GET /items
// The full catalog listing, newest items first, cached under the items tag.
func GetItems(db *gorm.DB, store cache.TagCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []models.Item
		err := store.GetOrCompute(c.Request.Context(), "items:list", []string{cache.TagItems}, &items, func() (interface{}, error) {
			var rows []models.Item
			err := db.Order("item_id DESC").Find(&rows).Error
			return rows, err
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GET /items/:item_id
func GetItemByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item_id"})
			return
		}

		var item models.Item
		if err := db.First(&item, "item_id = ?", itemID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}
