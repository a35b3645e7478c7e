package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Archan-07/E-Commerce-Backend/auth"
	"github.com/Archan-07/E-Commerce-Backend/config"
	"github.com/Archan-07/E-Commerce-Backend/models"
	"github.com/Archan-07/E-Commerce-Backend/utils"
)

const userKey = "user"

// ValidateToken extracts the access token from the accessToken cookie or the
// Authorization header, verifies it and attaches the user record to the
// request context.
func ValidateToken(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("accessToken")
		if err != nil || tokenString == "" {
			header := c.GetHeader("Authorization")
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
		if tokenString == "" {
			utils.Fail(c, http.StatusUnauthorized, "Access token is missing or user not logged in")
			return
		}

		claims, err := auth.ParseToken(tokenString, cfg.AccessTokenSecret)
		if err != nil {
			utils.Fail(c, http.StatusUnauthorized, "Invalid Access Token")
			return
		}
		userID, err := auth.UserIDFromClaims(claims)
		if err != nil {
			utils.Fail(c, http.StatusUnauthorized, "Invalid Access Token")
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			utils.Fail(c, http.StatusUnauthorized, "User not found")
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireAdmin gates admin-only routes. ValidateToken must run first.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "Access token is missing or user not logged in")
			return
		}
		if user.Role != models.RoleAdmin {
			utils.Fail(c, http.StatusForbidden, "Admin access required")
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user attached by ValidateToken.
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(userKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}
