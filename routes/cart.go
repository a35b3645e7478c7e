package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Archan-07/E-Commerce-Backend/controllers/cart"

	"github.com/Archan-07/E-Commerce-Backend/config"
	"github.com/Archan-07/E-Commerce-Backend/middleware"
)

// SetupCartRoutes registers all "/cart/*" endpoints. Requires identity.
func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	cartGroup := api.Group("/cart")
	cartGroup.Use(middleware.ValidateToken(db, cfg))
	{
		cartGroup.POST("/addToCart", cartControllers.AddToCart(db))
		cartGroup.GET("/getCart", cartControllers.GetCart(db))
		cartGroup.DELETE("/removeFromCart/:id", cartControllers.RemoveFromCart(db))
		cartGroup.DELETE("/clear", cartControllers.ClearCart(db))
	}
}
