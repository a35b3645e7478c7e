package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Archan-07/E-Commerce-Backend/middleware"
	"github.com/Archan-07/E-Commerce-Backend/models"
	"github.com/Archan-07/E-Commerce-Backend/utils"
)

type UpdateOrderStatusInput struct {
	PaymentStatus  string `json:"paymentstatus"`
	ShipmentStatus string `json:"shipmentstatus"`
}

func validPaymentStatus(s string) bool {
	switch models.PaymentStatus(s) {
	case models.PaymentStatusPending, models.PaymentStatusCompleted, models.PaymentStatusFailed:
		return true
	}
	return false
}

func validShipmentStatus(s string) bool {
	switch models.ShipmentStatus(s) {
	case models.ShipmentStatusPending, models.ShipmentStatusShipped,
		models.ShipmentStatusDelivered, models.ShipmentStatusReturned:
		return true
	}
	return false
}

// POST /api/v1/order/placeOrder
//
// Snapshots the cart's quantities and current prices into order items, sums
// the total, creates the order and deletes the cart, all in one transaction.
func PlaceOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "Access token is missing or user not logged in")
			return
		}

		var cart models.Cart
		err := db.Preload("Items.Product").Where("user_id = ?", user.ID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && len(cart.Items) == 0) {
			utils.Fail(c, http.StatusBadRequest, "Cart is empty")
			return
		}
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to fetch cart")
			return
		}

		var order models.Order
		err = db.Transaction(func(tx *gorm.DB) error {
			var total float64
			items := make([]models.OrderItem, 0, len(cart.Items))
			for _, item := range cart.Items {
				total += float64(item.Quantity) * item.Product.Price
				items = append(items, models.OrderItem{
					ProductID: item.ProductID,
					Quantity:  item.Quantity,
					Price:     item.Product.Price,
				})
			}

			order = models.Order{
				UserID:         user.ID,
				Items:          items,
				TotalAmount:    total,
				PaymentStatus:  models.PaymentStatusPending,
				ShipmentStatus: models.ShipmentStatusPending,
				PaymentID:      uuid.NewString(),
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&cart).Error
		})
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to place order")
			return
		}

		utils.OK(c, http.StatusCreated, order, "Order placed successfully")
	}
}

// GET /api/v1/order/getOrders
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "Access token is missing or user not logged in")
			return
		}

		var orders []models.Order
		if err := db.
			Preload("Items.Product").
			Where("user_id = ?", user.ID).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to fetch orders")
			return
		}
		utils.OK(c, http.StatusOK, orders, "User orders fetched successfully")
	}
}

// GET /api/v1/order/getAllOrders (admin)
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items.Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to fetch orders")
			return
		}
		utils.OK(c, http.StatusOK, orders, "All orders fetched successfully")
	}
}

// PUT /api/v1/order/updateOrderStatus/:id (admin)
//
// Partial patch: either status may be updated on its own. Transitions are
// free-form within the enum sets; no validity graph is enforced.
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateOrderStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		if input.PaymentStatus == "" && input.ShipmentStatus == "" {
			utils.Fail(c, http.StatusBadRequest, "Provide paymentstatus or shipmentstatus")
			return
		}
		if input.PaymentStatus != "" && !validPaymentStatus(input.PaymentStatus) {
			utils.Fail(c, http.StatusBadRequest, "Invalid payment status")
			return
		}
		if input.ShipmentStatus != "" && !validShipmentStatus(input.ShipmentStatus) {
			utils.Fail(c, http.StatusBadRequest, "Invalid shipment status")
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
			utils.Fail(c, http.StatusNotFound, "Order not found")
			return
		}

		if input.PaymentStatus != "" {
			order.PaymentStatus = models.PaymentStatus(input.PaymentStatus)
		}
		if input.ShipmentStatus != "" {
			order.ShipmentStatus = models.ShipmentStatus(input.ShipmentStatus)
		}
		if err := db.Save(&order).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to update order status")
			return
		}
		utils.OK(c, http.StatusOK, order, "Order status updated successfully")
	}
}
