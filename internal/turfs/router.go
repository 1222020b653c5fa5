package turfs

import (
	"turfbook/internal/shared/config"
	"turfbook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers turf routes. Reads are public; mutations are
// admin-only.
func SetupRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	turfs := rg.Group("/turfs")
	{
		turfs.GET("", controller.List)
		turfs.GET("/:id", controller.Get)

		admin := turfs.Group("")
		admin.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
		{
			admin.POST("", controller.Create)
			admin.PATCH("/:id", controller.Update)
			admin.PUT("/:id/status", controller.SetStatus)
			admin.DELETE("/:id", controller.Delete)
		}
	}
}
