package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Archan-07/E-Commerce-Backend/models"
	"github.com/Archan-07/E-Commerce-Backend/utils"
)

// GET /api/v1/product/getAllProducts?page&limit&keyword&category
//
// Pagination is 1-indexed with a default of 10 per page. keyword is a
// case-insensitive substring match on the title; category filters by id.
// The total count is reported alongside the page slice.
func GetAllProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
		if err != nil || limit < 1 {
			limit = 10
		}

		query := db.Model(&models.Product{})
		if keyword := c.Query("keyword"); keyword != "" {
			query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(keyword)+"%")
		}
		if categoryID := c.Query("category"); categoryID != "" {
			if cid, err := strconv.ParseUint(categoryID, 10, 64); err == nil {
				query = query.Where("category_id = ?", uint(cid))
			} else {
				utils.Fail(c, http.StatusBadRequest, "Invalid category")
				return
			}
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to fetch products")
			return
		}

		var products []models.Product
		if err := query.
			Preload("Category").
			Offset((page - 1) * limit).
			Limit(limit).
			Find(&products).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to fetch products")
			return
		}

		utils.OK(c, http.StatusOK, gin.H{
			"total":    total,
			"page":     page,
			"limit":    limit,
			"products": products,
		}, "Fetched all products")
	}
}
