package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authControllers "github.com/Archan-07/E-Commerce-Backend/controllers/auth"

	"github.com/Archan-07/E-Commerce-Backend/config"
	"github.com/Archan-07/E-Commerce-Backend/middleware"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config, counter middleware.Counter) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(db))
		authGroup.POST("/login",
			middleware.LoginRateLimiter(counter, cfg.LoginRateLimit, cfg.LoginRateWindow),
			authControllers.Login(db, cfg),
		)
		authGroup.POST("/logout",
			middleware.ValidateToken(db, cfg),
			authControllers.Logout(db),
		)
		authGroup.POST("/refreshToken", authControllers.RefreshToken(db, cfg))
	}
}
