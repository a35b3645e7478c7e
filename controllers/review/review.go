package reviewControllers

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Archan-07/E-Commerce-Backend/middleware"
	"github.com/Archan-07/E-Commerce-Backend/models"
	"github.com/Archan-07/E-Commerce-Backend/utils"
)

type ReviewInput struct {
	Rating  float64 `json:"rating" binding:"required,min=1,max=5"`
	Comment string  `json:"comment"`
}

// recomputeAverageRating persists the arithmetic mean of all ratings for a
// product, rounded to one decimal place. No reviews yields 0.
func recomputeAverageRating(tx *gorm.DB, productID uint) error {
	var avg float64
	if err := tx.Model(&models.Review{}).
		Where("product_id = ?", productID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error; err != nil {
		return err
	}
	avg = math.Round(avg*10) / 10
	return tx.Model(&models.Product{}).
		Where("id = ?", productID).
		Update("average_rating", avg).Error
}

// POST /api/v1/review/addOrUpdateReview/:productId
//
// Upsert keyed by (product, user): a second review by the same user for the
// same product overwrites rating and comment in place.
func AddOrUpdateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "Access token is missing or user not logged in")
			return
		}

		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Rating between 1 and 5 is required")
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("productId")).Error; err != nil {
			utils.Fail(c, http.StatusNotFound, "Product not found")
			return
		}

		var review models.Review
		created := false
		err := db.Transaction(func(tx *gorm.DB) error {
			err := tx.Where("product_id = ? AND user_id = ?", product.ID, user.ID).
				First(&review).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				created = true
				review = models.Review{
					ProductID: product.ID,
					UserID:    user.ID,
					Rating:    input.Rating,
					Comment:   input.Comment,
				}
				if err := tx.Create(&review).Error; err != nil {
					return err
				}
			case err != nil:
				return err
			default:
				review.Rating = input.Rating
				review.Comment = input.Comment
				if err := tx.Save(&review).Error; err != nil {
					return err
				}
			}
			return recomputeAverageRating(tx, product.ID)
		})
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to save review")
			return
		}

		message := "Review updated"
		if created {
			message = "Review added"
		}
		utils.OK(c, http.StatusOK, review, message)
	}
}

// GET /api/v1/review/getProductReview/:productId
func GetProductReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reviews []models.Review
		if err := db.
			Preload("User").
			Where("product_id = ?", c.Param("productId")).
			Find(&reviews).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to fetch reviews")
			return
		}
		utils.OK(c, http.StatusOK, reviews, "Product reviews fetched")
	}
}

// DELETE /api/v1/review/deleteReview/:id
//
// Only the review's own author may delete it; this is an ownership check,
// not a role check.
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "Access token is missing or user not logged in")
			return
		}

		var review models.Review
		if err := db.First(&review, "id = ?", c.Param("id")).Error; err != nil {
			utils.Fail(c, http.StatusNotFound, "Review not found")
			return
		}
		if review.UserID != user.ID {
			utils.Fail(c, http.StatusForbidden, "You are not allowed to delete this review")
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Delete(&review).Error; err != nil {
				return err
			}
			return recomputeAverageRating(tx, review.ProductID)
		})
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to delete review")
			return
		}
		utils.OK(c, http.StatusOK, gin.H{}, "Review deleted successfully")
	}
}
