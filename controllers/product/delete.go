package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Archan-07/E-Commerce-Backend/models"
	"github.com/Archan-07/E-Commerce-Backend/utils"
)

// DELETE /api/v1/product/deleteProduct/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			utils.Fail(c, http.StatusNotFound, "Product not found")
			return
		}
		if err := db.Delete(&product).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to delete product")
			return
		}
		utils.OK(c, http.StatusOK, gin.H{}, "Product deleted")
	}
}
