package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Archan-07/E-Commerce-Backend/controllers/order"

	"github.com/Archan-07/E-Commerce-Backend/config"
	"github.com/Archan-07/E-Commerce-Backend/middleware"
)

// SetupOrderRoutes registers all "/order/*" endpoints.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	orderGroup := api.Group("/order")
	orderGroup.Use(middleware.ValidateToken(db, cfg))
	{
		orderGroup.POST("/placeOrder", orderControllers.PlaceOrder(db))
		orderGroup.GET("/getOrders", orderControllers.GetOrders(db))

		admin := orderGroup.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/getAllOrders", orderControllers.GetAllOrders(db))
			admin.PUT("/updateOrderStatus/:id", orderControllers.UpdateOrderStatus(db))
		}
	}
}
