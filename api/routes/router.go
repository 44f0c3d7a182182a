// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"saunie/internal/analytics"
	"saunie/internal/notifications"
	"saunie/internal/patrons"
	"saunie/internal/seats"
	"saunie/internal/shared/config"
	"saunie/internal/shared/database"
	"saunie/internal/trips"
	"saunie/pkg/cache"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	cache     cache.Service
	publisher notifications.Publisher

	// seat service is shared: trips and patrons consult it for bookings
	seatService seats.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, publisher notifications.Publisher) *Router {
	return &Router{
		config:    cfg,
		db:        db,
		cache:     cache.NewService(db.GetRedisClient()),
		publisher: publisher,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := engine.Group(r.config.GetAPIBasePath())
	{
		// seats first: trips and patrons are wired against its service
		r.setupSeatRoutes(api)
		r.setupTripRoutes(api)
		r.setupPatronRoutes(api)
		r.setupAnalyticsRoutes(api)
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
				"service":   "saunie-console",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "saunie-console",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"redis":       r.db.GetRedisClient() != nil,
			"timestamp":   time.Now(),
		})
	})
}

// seatLocker serializes a trip inside this process and, with Redis, across replicas
func (r *Router) seatLocker() seats.Locker {
	local := seats.NewLocalLocker()
	if r.db.GetRedisClient() == nil {
		return local
	}
	return seats.ChainLocker{
		local,
		seats.NewRedisLocker(r.db.GetRedisClient(), r.config.SeatLock.TTL, r.config.SeatLock.RetryInterval),
	}
}

// setupSeatRoutes configures the seat map and booking routes
func (r *Router) setupSeatRoutes(rg *gin.RouterGroup) {
	seatStore := seats.NewRepository(r.db.GetPostgreSQL())
	seatService := seats.NewService(seatStore, r.seatLocker(), r.config.SeatLock.Wait)
	seatService.SetCacheService(r.cache)
	seatService.SetPublisher(r.publisher)

	r.seatService = seatService

	seats.SetupSeatRoutes(rg, seats.NewController(seatService))
}

// setupTripRoutes configures trip management routes
func (r *Router) setupTripRoutes(rg *gin.RouterGroup) {
	tripRepo := trips.NewRepository(r.db.GetPostgreSQL())
	tripService := trips.NewService(tripRepo)
	tripService.SetCacheService(r.cache)

	// Inject seat service dependency
	if r.seatService != nil {
		tripService.SetCapacityGuard(r.seatService)
		tripService.SetBookingCounter(r.seatService)
	}

	trips.SetupTripRoutes(rg, trips.NewController(tripService))
}

// setupPatronRoutes configures patron management routes
func (r *Router) setupPatronRoutes(rg *gin.RouterGroup) {
	patronRepo := patrons.NewRepository(r.db.GetPostgreSQL())
	patronService := patrons.NewService(patronRepo)
	patronService.SetCacheService(r.cache)

	if r.seatService != nil {
		patronService.SetBookingCounter(r.seatService)
	}

	patrons.SetupPatronRoutes(rg, patrons.NewController(patronService))
}

// setupAnalyticsRoutes configures dashboard routes
func (r *Router) setupAnalyticsRoutes(rg *gin.RouterGroup) {
	analyticsRepo := analytics.NewRepository(r.db.GetPostgreSQL())
	analyticsService := analytics.NewService(analyticsRepo)
	analyticsService.SetCacheService(r.cache)

	analytics.SetupAnalyticsRoutes(rg, analytics.NewController(analyticsService))
}
