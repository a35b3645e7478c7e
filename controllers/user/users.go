package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Archan-07/E-Commerce-Backend/middleware"
	"github.com/Archan-07/E-Commerce-Backend/models"
	"github.com/Archan-07/E-Commerce-Backend/utils"
)

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type UpdateProfileInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// POST /api/v1/user/changePassword
func ChangePassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "Access token is missing or user not logged in")
			return
		}

		var input ChangePasswordInput
		if err := c.ShouldBindJSON(&input); err != nil ||
			input.CurrentPassword == "" || input.NewPassword == "" {
			utils.Fail(c, http.StatusBadRequest, "Please provide current and new password")
			return
		}
		if !utils.IsPasswordStrong(input.NewPassword) {
			utils.Fail(c, http.StatusBadRequest,
				"Password must be at least 8 characters long and include uppercase, lowercase, number, and special character")
			return
		}

		var stored models.User
		if err := db.First(&stored, user.ID).Error; err != nil {
			utils.Fail(c, http.StatusNotFound, "User not found")
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte(input.CurrentPassword)); err != nil {
			utils.Fail(c, http.StatusUnauthorized, "Current password is incorrect")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to change password")
			return
		}
		if err := db.Model(&stored).Update("password", string(hash)).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to change password")
			return
		}

		utils.OK(c, http.StatusOK, user, "Password changed successfully")
	}
}

// GET /api/v1/user/getCurrentUser
func GetCurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "Access token is missing or user not logged in")
			return
		}
		utils.OK(c, http.StatusOK, user, "Current user fetched successfully")
	}
}

// PUT /api/v1/user/updateProfile
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "Access token is missing or user not logged in")
			return
		}

		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil ||
			input.Name == "" || input.Email == "" || input.Address == "" || input.Phone == "" {
			utils.Fail(c, http.StatusBadRequest, "Please provide all required fields")
			return
		}
		if !utils.IsEmailValid(input.Email) {
			utils.Fail(c, http.StatusBadRequest, "Invalid email format")
			return
		}
		if !utils.IsPhoneValid(input.Phone) {
			utils.Fail(c, http.StatusBadRequest, "Phone number must be between 10 and 15 characters")
			return
		}

		updates := map[string]interface{}{
			"name":    input.Name,
			"email":   input.Email,
			"address": input.Address,
			"phone":   input.Phone,
		}
		if err := db.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to update user")
			return
		}

		var updated models.User
		if err := db.First(&updated, user.ID).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to update user")
			return
		}
		utils.OK(c, http.StatusOK, updated, "User profile updated successfully")
	}
}
