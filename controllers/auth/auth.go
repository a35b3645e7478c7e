package authControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Archan-07/E-Commerce-Backend/auth"
	"github.com/Archan-07/E-Commerce-Backend/config"
	"github.com/Archan-07/E-Commerce-Backend/middleware"
	"github.com/Archan-07/E-Commerce-Backend/models"
	"github.com/Archan-07/E-Commerce-Backend/utils"
)

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshInput struct {
	RefreshToken string `json:"refreshToken"`
}

// setAuthCookies sets both tokens as http-only secure cookies.
func setAuthCookies(c *gin.Context, cfg *config.Config, accessToken, refreshToken string) {
	c.SetCookie("accessToken", accessToken, int(cfg.AccessTokenTTL.Seconds()), "/", "", true, true)
	c.SetCookie("refreshToken", refreshToken, int(cfg.RefreshTokenTTL.Seconds()), "/", "", true, true)
}

func clearAuthCookies(c *gin.Context) {
	c.SetCookie("accessToken", "", -1, "/", "", true, true)
	c.SetCookie("refreshToken", "", -1, "/", "", true, true)
}

// POST /api/v1/auth/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Please provide all required fields")
			return
		}
		if input.Name == "" || input.Email == "" || input.Password == "" ||
			input.Address == "" || input.Phone == "" || input.Role == "" {
			utils.Fail(c, http.StatusBadRequest, "Please provide all required fields")
			return
		}
		if !utils.IsPhoneValid(input.Phone) {
			utils.Fail(c, http.StatusBadRequest, "Phone number must be between 10 and 15 characters")
			return
		}
		if !utils.IsEmailValid(input.Email) {
			utils.Fail(c, http.StatusBadRequest, "Invalid email format")
			return
		}
		if !utils.IsPasswordStrong(input.Password) {
			utils.Fail(c, http.StatusBadRequest,
				"Password must be at least 8 characters long and include uppercase, lowercase, number, and special character")
			return
		}

		var existing models.User
		if err := db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			utils.Fail(c, http.StatusConflict, "User with email already exists")
			return
		}
		if err := db.Where("phone = ?", input.Phone).First(&existing).Error; err == nil {
			utils.Fail(c, http.StatusConflict, "User with phone number already exists")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to register user")
			return
		}

		user := models.User{
			Name:     input.Name,
			Email:    input.Email,
			Password: string(hash),
			Address:  input.Address,
			Phone:    input.Phone,
			Role:     input.Role,
		}
		if err := db.Create(&user).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to register user")
			return
		}

		utils.OK(c, http.StatusCreated, user, "User registered successfully")
	}
}

// POST /api/v1/auth/login
func Login(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Password == "" {
			utils.Fail(c, http.StatusBadRequest, "Please provide email and password")
			return
		}
		if !utils.IsEmailValid(input.Email) {
			utils.Fail(c, http.StatusBadRequest, "Invalid email format")
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			utils.Fail(c, http.StatusNotFound, "User not found")
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			utils.Fail(c, http.StatusUnauthorized, "Incorrect password")
			return
		}

		accessToken, refreshToken, err := auth.GenerateTokenPair(db, cfg, user)
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Access and Refresh Tokens are not generated")
			return
		}

		var loggedInUser models.User
		if err := db.
			Preload("Cart.Items.Product").
			Preload("Orders.Items.Product").
			First(&loggedInUser, user.ID).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to load user profile")
			return
		}

		setAuthCookies(c, cfg, accessToken, refreshToken)
		utils.OK(c, http.StatusOK, gin.H{
			"user":         loggedInUser,
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
		}, "User logged in successfully")
	}
}

// POST /api/v1/auth/logout
func Logout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "Access token is missing or user not logged in")
			return
		}
		if err := db.Model(&models.User{}).Where("id = ?", user.ID).
			Update("refresh_token", "").Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to log out user")
			return
		}
		clearAuthCookies(c)
		utils.OK(c, http.StatusOK, nil, "User logged out successfully")
	}
}

// POST /api/v1/auth/refreshToken
//
// Rotation-on-use: every successful refresh issues a new token pair and
// persists the new refresh token, so a stale refresh token stops working as
// soon as a newer one exists.
func RefreshToken(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		incoming, _ := c.Cookie("refreshToken")
		if incoming == "" {
			var input RefreshInput
			if err := c.ShouldBindJSON(&input); err == nil {
				incoming = input.RefreshToken
			}
		}
		if incoming == "" {
			utils.Fail(c, http.StatusUnauthorized, "Refresh token is missing")
			return
		}

		claims, err := auth.ParseToken(incoming, cfg.RefreshTokenSecret)
		if err != nil {
			utils.Fail(c, http.StatusUnauthorized, "Invalid Refresh Token")
			return
		}
		userID, err := auth.UserIDFromClaims(claims)
		if err != nil {
			utils.Fail(c, http.StatusUnauthorized, "Invalid Refresh Token")
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			utils.Fail(c, http.StatusUnauthorized, "User not found")
			return
		}
		if incoming != user.RefreshToken {
			utils.Fail(c, http.StatusUnauthorized, "Refresh token is invalid or expired")
			return
		}

		accessToken, refreshToken, err := auth.GenerateTokenPair(db, cfg, user)
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Access and Refresh Tokens are not generated")
			return
		}

		setAuthCookies(c, cfg, accessToken, refreshToken)
		utils.OK(c, http.StatusOK, gin.H{
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
		}, "Access token refreshed successfully")
	}
}
