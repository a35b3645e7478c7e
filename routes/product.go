package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/Archan-07/E-Commerce-Backend/controllers/product"

	"github.com/Archan-07/E-Commerce-Backend/config"
	"github.com/Archan-07/E-Commerce-Backend/middleware"
	"github.com/Archan-07/E-Commerce-Backend/utils"
)

// SetupProductRoutes registers all "/product/*" endpoints.
func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config, up utils.Uploader) {
	productGroup := api.Group("/product")
	productGroup.Use(middleware.ValidateToken(db, cfg))
	{
		productGroup.GET("/getProductById/:id", productcontroller.GetProductByID(db))
		productGroup.GET("/getAllProducts", productcontroller.GetAllProducts(db))

		admin := productGroup.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/createProduct", productcontroller.CreateProduct(db, up))
			admin.PUT("/updateProduct/:id", productcontroller.UpdateProduct(db))
			admin.DELETE("/deleteProduct/:id", productcontroller.DeleteProduct(db))
		}
	}
}
