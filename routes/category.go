package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	categoryControllers "github.com/Archan-07/E-Commerce-Backend/controllers/category"

	"github.com/Archan-07/E-Commerce-Backend/config"
	"github.com/Archan-07/E-Commerce-Backend/middleware"
)

// SetupCategoryRoutes registers all "/category/*" endpoints. Mutations are
// admin-only; listing requires identity only.
func SetupCategoryRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	categoryGroup := api.Group("/category")
	categoryGroup.Use(middleware.ValidateToken(db, cfg))
	{
		categoryGroup.GET("/getAllCategories", categoryControllers.GetAllCategories(db))

		admin := categoryGroup.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/createCategory", categoryControllers.CreateCategory(db))
			admin.PUT("/updateCategory/:id", categoryControllers.UpdateCategory(db))
			admin.DELETE("/deleteCategory/:id", categoryControllers.DeleteCategory(db))
		}
	}
}
