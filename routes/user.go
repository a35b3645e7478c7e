package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/Archan-07/E-Commerce-Backend/controllers/user"

	"github.com/Archan-07/E-Commerce-Backend/config"
	"github.com/Archan-07/E-Commerce-Backend/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires identity.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	userGroup := api.Group("/user")
	userGroup.Use(middleware.ValidateToken(db, cfg))
	{
		userGroup.POST("/changePassword", userControllers.ChangePassword(db))
		userGroup.GET("/getCurrentUser", userControllers.GetCurrentUser())
		userGroup.PUT("/updateProfile", userControllers.UpdateProfile(db))
	}
}
