// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"turfbook/internal/auth"
	"turfbook/internal/blocks"
	"turfbook/internal/bookings"
	"turfbook/internal/events"
	"turfbook/internal/pricing"
	"turfbook/internal/shared/config"
	"turfbook/internal/shared/database"
	"turfbook/internal/turfs"
	"turfbook/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	notifier bookings.Notifier

	// retained for cross-package wiring and background jobs
	turfService    turfs.Service
	blockService   blocks.Service
	eventService   events.Service
	priceResolver  pricing.Resolver
	bookingService bookings.Service
}

// NewRouter creates a new router instance. notifier may be nil when
// event publishing is disabled.
func NewRouter(cfg *config.Config, db *database.DB, notifier bookings.Notifier) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		notifier: notifier,
	}
}

// BookingService exposes the wired booking service so main can hand it
// to the background job processor.
func (r *Router) BookingService() bookings.Service {
	return r.bookingService
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupTurfRoutes(api)
		r.setupBlockRoutes(api)
		r.setupPricingRoutes(api)
		r.setupEventRoutes(api)

		// Bookings last: the admission path depends on every service above.
		r.setupBookingRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "turfbook-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "turfbook-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController, r.config)

	authRouter.SetupRoutes(rg)
}

// setupTurfRoutes configures turf catalog routes
func (r *Router) setupTurfRoutes(rg *gin.RouterGroup) {
	turfRepo := turfs.NewRepository(r.db.GetPostgreSQL())
	cacheService := cache.NewService(r.db.GetRedisClient())
	turfService := turfs.NewService(turfRepo, cacheService, r.config.Redis.TurfCacheTTL)
	turfController := turfs.NewController(turfService)

	r.turfService = turfService

	turfs.SetupRoutes(rg, turfController, r.config)
}

// setupBlockRoutes configures admin blocking routes
func (r *Router) setupBlockRoutes(rg *gin.RouterGroup) {
	blockRepo := blocks.NewRepository(r.db.GetPostgreSQL())
	blockService := blocks.NewService(blockRepo)
	blockController := blocks.NewController(blockService)

	r.blockService = blockService

	blocks.SetupRoutes(rg, blockController, r.config)
}

// setupPricingRoutes configures peak pricing rule routes
func (r *Router) setupPricingRoutes(rg *gin.RouterGroup) {
	pricingRepo := pricing.NewRepository(r.db.GetPostgreSQL())
	pricingService := pricing.NewService(pricingRepo)
	pricingController := pricing.NewController(pricingService)

	r.priceResolver = pricing.NewResolver(pricingRepo)

	pricing.SetupRoutes(rg, pricingController, r.config)
}

// setupEventRoutes configures scheduled event routes
func (r *Router) setupEventRoutes(rg *gin.RouterGroup) {
	eventRepo := events.NewRepository(r.db.GetPostgreSQL())
	eventService := events.NewService(eventRepo)
	eventController := events.NewController(eventService)

	r.eventService = eventService

	events.SetupRoutes(rg, eventController, r.config)
}

// setupBookingRoutes configures availability and booking admission routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())
	generator := bookings.NewSlotGenerator(
		r.turfService,
		bookingRepo,
		r.blockService,
		r.eventService,
		r.priceResolver,
		r.config.Booking.ReaperWindow,
	)
	bookingService := bookings.NewService(
		bookingRepo,
		generator,
		r.turfService,
		r.blockService,
		r.eventService,
		r.priceResolver,
		r.notifier,
		r.config.Booking.HoldGracePeriod,
		r.config.Booking.ReaperWindow,
	)
	bookingController := bookings.NewController(bookingService)

	r.bookingService = bookingService

	bookings.SetupRoutes(rg, bookingController, r.config)
}
