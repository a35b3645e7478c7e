package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Archan-07/E-Commerce-Backend/config"
	"github.com/Archan-07/E-Commerce-Backend/middleware"
	"github.com/Archan-07/E-Commerce-Backend/utils"
)

// SetupRoutes wires every route group under /api/v1.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, up utils.Uploader, counter middleware.Counter) {
	api := r.Group("/api/v1")

	SetupAuthRoutes(api, db, cfg, counter)
	SetupUserRoutes(api, db, cfg)
	SetupCategoryRoutes(api, db, cfg)
	SetupProductRoutes(api, db, cfg, up)
	SetupCartRoutes(api, db, cfg)
	SetupOrderRoutes(api, db, cfg)
	SetupReviewRoutes(api, db, cfg)
}
