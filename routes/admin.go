package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Pen-Clock/BodiaStore/cache"
	customerControllers "github.com/Pen-Clock/BodiaStore/controllers/customer"
	itemControllers "github.com/Pen-Clock/BodiaStore/controllers/item"
	orderControllers "github.com/Pen-Clock/BodiaStore/controllers/order"
	"github.com/Pen-Clock/BodiaStore/middleware"
)

// SetupAdminRoutes registers the API-key-protected admin endpoints.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, store cache.TagCache) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAPIKey)
	{
		items := admin.Group("/items")
		{
			items.GET("/export", itemControllers.ExportItemsToExcel(db))
			items.POST("/", itemControllers.CreateItem(db, store))
			items.PUT("/:item_id", itemControllers.UpdateItem(db, store))
			items.DELETE("/:item_id", itemControllers.DeleteItem(db, store))
		}

		customers := admin.Group("/customers")
		{
			customers.GET("/", customerControllers.GetCustomers(db, store))
			customers.GET("/:customer_id", customerControllers.GetCustomerByID(db))
			customers.POST("/", customerControllers.CreateCustomer(db, store))
			customers.PUT("/:customer_id", customerControllers.RenameCustomer(db, store))
			customers.DELETE("/:customer_id", customerControllers.DeleteCustomer(db, store))
		}

		admin.GET("/orders", orderControllers.GetAllOrders(db))
	}
}
