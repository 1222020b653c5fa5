package bookings

import (
	"github.com/gin-gonic/gin"

	"turfbook/internal/shared/config"
	"turfbook/internal/shared/middleware"
)

// SetupRoutes mounts the availability and booking endpoints. Availability
// is public; admission accepts both authenticated and guest callers; the
// payment signal is an external webhook.
func SetupRoutes(rg *gin.RouterGroup, controller Controller, cfg *config.Config) {
	turfScoped := rg.Group("/turfs/:turfId")
	{
		turfScoped.GET("/availability", controller.GetAvailability)
		turfScoped.POST("/bookings", middleware.OptionalJWTAuth(cfg), controller.RequestBooking)
	}

	// External payment confirmation signal.
	rg.POST("/payments/signal", controller.PaymentSignal)

	authed := rg.Group("/bookings")
	authed.Use(middleware.JWTAuthWithConfig(cfg))
	{
		authed.GET("/me", controller.GetMyBookings)
		authed.GET("/:bookingId", controller.GetBooking)
		authed.POST("/:bookingId/cancel", controller.CancelBooking)
	}

	admin := rg.Group("/bookings")
	admin.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		admin.POST("/:bookingId/refund", controller.RefundBooking)
	}
}
