package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Archan-07/E-Commerce-Backend/models"
	"github.com/Archan-07/E-Commerce-Backend/utils"
)

type UpdateProductInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}

// PUT /api/v1/product/updateProduct/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil ||
			input.Title == "" || input.Description == "" || input.Price == 0 ||
			input.Category == "" || input.Stock == 0 {
			utils.Fail(c, http.StatusBadRequest, "All fields are required")
			return
		}

		var category models.Category
		if err := db.Where("name = ?", input.Category).First(&category).Error; err != nil {
			utils.Fail(c, http.StatusNotFound, "Category not found")
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			utils.Fail(c, http.StatusNotFound, "Product not found")
			return
		}

		updates := map[string]interface{}{
			"title":       input.Title,
			"description": input.Description,
			"price":       input.Price,
			"category_id": category.ID,
			"stock":       input.Stock,
		}
		if err := db.Model(&product).Updates(updates).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to update product")
			return
		}
		utils.OK(c, http.StatusOK, product, "Product updated")
	}
}
