package categoryControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Archan-07/E-Commerce-Backend/models"
	"github.com/Archan-07/E-Commerce-Backend/utils"
)

type CategoryInput struct {
	Name string `json:"name"`
}

// POST /api/v1/category/createCategory
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" {
			utils.Fail(c, http.StatusBadRequest, "Category name is required")
			return
		}

		// Uniqueness is case-insensitive: "Shoes" and "shoes" are the same category.
		var existing models.Category
		if err := db.Where("LOWER(name) = LOWER(?)", input.Name).First(&existing).Error; err == nil {
			utils.Fail(c, http.StatusConflict, "Category already exists")
			return
		}

		category := models.Category{
			Name: input.Name,
			Slug: utils.Slugify(input.Name),
		}
		if err := db.Create(&category).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to create category")
			return
		}
		utils.OK(c, http.StatusCreated, category, "Category created successfully")
	}
}

// GET /api/v1/category/getAllCategories
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to fetch categories")
			return
		}
		utils.OK(c, http.StatusOK, categories, "Fetched all categories")
	}
}

// PUT /api/v1/category/updateCategory/:id
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" {
			utils.Fail(c, http.StatusBadRequest, "Category name is required")
			return
		}

		var category models.Category
		if err := db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
			utils.Fail(c, http.StatusNotFound, "Category not found")
			return
		}

		category.Name = input.Name
		category.Slug = utils.Slugify(input.Name)
		if err := db.Save(&category).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to update category")
			return
		}
		utils.OK(c, http.StatusOK, category, "Category updated successfully")
	}
}

// DELETE /api/v1/category/deleteCategory/:id
//
// Products keep their category id; deletion does not cascade.
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
			utils.Fail(c, http.StatusNotFound, "Category not found")
			return
		}
		if err := db.Delete(&category).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to delete category")
			return
		}
		utils.OK(c, http.StatusOK, gin.H{}, "Category deleted successfully")
	}
}
