package blocks

import (
	"github.com/gin-gonic/gin"

	"turfbook/internal/shared/config"
	"turfbook/internal/shared/middleware"
)

// SetupRoutes mounts the block management endpoints. All of them are
// operator actions and require the admin role.
func SetupRoutes(rg *gin.RouterGroup, controller Controller, cfg *config.Config) {
	group := rg.Group("/turfs/:turfId/blocks")
	group.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		group.GET("", controller.ListEntries)
		group.POST("", controller.BlockTimes)
		group.POST("/unblock", controller.UnblockTime)
	}

	admin := rg.Group("/blocks")
	admin.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		admin.DELETE("/:entryId", controller.DeleteEntry)
	}
}
