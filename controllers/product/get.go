package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Archan-07/E-Commerce-Backend/models"
	"github.com/Archan-07/E-Commerce-Backend/utils"
)

// GET /api/v1/product/getProductById/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.
			Preload("Category").
			Preload("Reviews.User").
			First(&product, "id = ?", c.Param("id")).Error; err != nil {
			utils.Fail(c, http.StatusNotFound, "Product not found")
			return
		}
		utils.OK(c, http.StatusOK, product, "Product fetched by id")
	}
}
