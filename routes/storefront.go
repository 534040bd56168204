package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Pen-Clock/BodiaStore/cache"
	cartControllers "github.com/Pen-Clock/BodiaStore/controllers/cart"
	checkoutControllers "github.com/Pen-Clock/BodiaStore/controllers/checkout"
	itemControllers "github.com/Pen-Clock/BodiaStore/controllers/item"
	orderControllers "github.com/Pen-Clock/BodiaStore/controllers/order"
	"github.com/Pen-Clock/BodiaStore/middleware"
)

// SetupStorefrontRoutes registers the customer-facing endpoints. Every
// request passes the identity middleware first so handlers can read the
// resolved customer id.
func SetupStorefrontRoutes(r *gin.Engine, db *gorm.DB, store cache.TagCache, resolver middleware.CustomerResolver) {
	shop := r.Group("/")
	shop.Use(middleware.ResolveIdentity(resolver))
	{
		// Catalog
		shop.GET("/items", itemControllers.GetItems(db, store))
		shop.GET("/items/:item_id", itemControllers.GetItemByID(db))

		// Cart
		cartGroup := shop.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.ListHandler(db, store))
			cartGroup.POST("/", cartControllers.AddItemHandler(db, store))
			cartGroup.PUT("/", cartControllers.SetQuantityHandler(db, store))
			cartGroup.POST("/bulk", cartControllers.AddItemsHandler(db, store))
			cartGroup.PUT("/bulk", cartControllers.SetQuantitiesHandler(db, store))
			cartGroup.DELETE("/:item_id", cartControllers.RemoveItemHandler(db, store))
			cartGroup.DELETE("/", cartControllers.ClearHandler(db, store))
		}

		// Checkout + receipts
		shop.POST("/checkout", checkoutControllers.CheckoutHandler(db, store))
		shop.GET("/orders", orderControllers.GetCustomerOrders(db, store))
	}
}
