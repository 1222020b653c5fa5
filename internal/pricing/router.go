package pricing

import (
	"github.com/gin-gonic/gin"

	"turfbook/internal/shared/config"
	"turfbook/internal/shared/middleware"
)

// SetupRoutes mounts the peak-rule management endpoints (admin only).
func SetupRoutes(rg *gin.RouterGroup, controller Controller, cfg *config.Config) {
	group := rg.Group("/turfs/:turfId/peak-rules")
	group.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		group.GET("", controller.ListRules)
		group.POST("", controller.CreateRule)
	}

	rules := rg.Group("/peak-rules")
	rules.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		rules.GET("/:ruleId", controller.GetRule)
		rules.PATCH("/:ruleId", controller.UpdateRule)
		rules.DELETE("/:ruleId", controller.DeleteRule)
	}
}
