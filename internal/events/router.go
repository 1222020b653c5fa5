package events

import (
	"github.com/gin-gonic/gin"

	"turfbook/internal/shared/config"
	"turfbook/internal/shared/middleware"
)

// SetupRoutes mounts the event endpoints. Listing is public so clients can
// show why slots are occupied; mutations are admin only.
func SetupRoutes(rg *gin.RouterGroup, controller Controller, cfg *config.Config) {
	public := rg.Group("/turfs/:turfId/events")
	{
		public.GET("", controller.ListEvents)
	}

	admin := rg.Group("/turfs/:turfId/events")
	admin.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		admin.POST("", controller.CreateEvent)
	}

	byID := rg.Group("/events")
	byID.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		byID.GET("/:eventId", controller.GetEvent)
		byID.PATCH("/:eventId", controller.UpdateEvent)
		byID.DELETE("/:eventId", controller.DeleteEvent)
	}
}
