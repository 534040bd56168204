package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Pen-Clock/BodiaStore/cache"
	checkoutControllers "github.com/Pen-Clock/BodiaStore/controllers/checkout"
	"github.com/Pen-Clock/BodiaStore/metrics"
	"github.com/Pen-Clock/BodiaStore/middleware"
)

// SetupRoutes wires the storefront group, the admin group, the order feed
// and the metrics endpoint.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store cache.TagCache, resolver middleware.CustomerResolver) {
	SetupStorefrontRoutes(r, db, store, resolver)
	SetupAdminRoutes(r, db, store)

	r.GET("/orders/ws", checkoutControllers.OrderFeedHandler)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
}
