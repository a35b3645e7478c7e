package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	reviewControllers "github.com/Archan-07/E-Commerce-Backend/controllers/review"

	"github.com/Archan-07/E-Commerce-Backend/config"
	"github.com/Archan-07/E-Commerce-Backend/middleware"
)

// SetupReviewRoutes registers all "/review/*" endpoints. Requires identity.
func SetupReviewRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	reviewGroup := api.Group("/review")
	reviewGroup.Use(middleware.ValidateToken(db, cfg))
	{
		reviewGroup.POST("/addOrUpdateReview/:productId", reviewControllers.AddOrUpdateReview(db))
		reviewGroup.GET("/getProductReview/:productId", reviewControllers.GetProductReview(db))
		reviewGroup.DELETE("/deleteReview/:id", reviewControllers.DeleteReview(db))
	}
}
