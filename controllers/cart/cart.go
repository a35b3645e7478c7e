package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Archan-07/E-Commerce-Backend/middleware"
	"github.com/Archan-07/E-Commerce-Backend/models"
	"github.com/Archan-07/E-Commerce-Backend/utils"
)

type AddToCartInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// POST /api/v1/cart/addToCart
//
// The cart is created lazily on first add. Adding a product that is already
// in the cart merges into the existing line by summing quantities.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "Access token is missing or user not logged in")
			return
		}

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Product ID and quantity are required")
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			utils.Fail(c, http.StatusNotFound, "Product not found")
			return
		}

		var cart models.Cart
		err := db.Where("user_id = ?", user.ID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cart = models.Cart{
				UserID: user.ID,
				Items:  []models.CartItem{{ProductID: product.ID, Quantity: input.Quantity}},
			}
			if err := db.Create(&cart).Error; err != nil {
				utils.Fail(c, http.StatusInternalServerError, "Failed to add item to cart")
				return
			}
		} else if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to fetch cart")
			return
		} else {
			var item models.CartItem
			err := db.Where("cart_id = ? AND product_id = ?", cart.ID, product.ID).First(&item).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				item = models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: input.Quantity}
				if err := db.Create(&item).Error; err != nil {
					utils.Fail(c, http.StatusInternalServerError, "Failed to add item to cart")
					return
				}
			case err != nil:
				utils.Fail(c, http.StatusInternalServerError, "Failed to fetch cart item")
				return
			default:
				item.Quantity += input.Quantity
				if err := db.Save(&item).Error; err != nil {
					utils.Fail(c, http.StatusInternalServerError, "Failed to update cart item")
					return
				}
			}
		}

		var updated models.Cart
		if err := db.Preload("Items.Product").Where("user_id = ?", user.ID).First(&updated).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to fetch cart")
			return
		}
		utils.OK(c, http.StatusOK, updated, "Product added to cart successfully")
	}
}

// GET /api/v1/cart/getCart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "Access token is missing or user not logged in")
			return
		}

		var cart models.Cart
		err := db.Preload("Items.Product").Where("user_id = ?", user.ID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.OK(c, http.StatusOK, []models.CartItem{}, "Cart is empty")
			return
		}
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to fetch cart")
			return
		}
		utils.OK(c, http.StatusOK, cart, "Cart fetched successfully")
	}
}

// DELETE /api/v1/cart/removeFromCart/:id
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "Access token is missing or user not logged in")
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", user.ID).First(&cart).Error; err != nil {
			utils.Fail(c, http.StatusNotFound, "Cart not found")
			return
		}

		if err := db.Where("cart_id = ? AND product_id = ?", cart.ID, c.Param("id")).
			Delete(&models.CartItem{}).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to remove item from cart")
			return
		}

		var updated models.Cart
		if err := db.Preload("Items.Product").First(&updated, cart.ID).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to fetch cart")
			return
		}
		utils.OK(c, http.StatusOK, updated, "Item removed from cart")
	}
}

// DELETE /api/v1/cart/clear
//
// Deletes the cart wholesale rather than emptying it; the next add recreates it.
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "Access token is missing or user not logged in")
			return
		}

		var cart models.Cart
		err := db.Where("user_id = ?", user.ID).First(&cart).Error
		if err == nil {
			err = db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
					return err
				}
				return tx.Delete(&cart).Error
			})
		} else if errors.Is(err, gorm.ErrRecordNotFound) {
			err = nil
		}
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to clear cart")
			return
		}
		utils.OK(c, http.StatusOK, gin.H{}, "Cart cleared")
	}
}
