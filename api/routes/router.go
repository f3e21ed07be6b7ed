// api/routes/router.go
package routes

import (
	"beeos/internal/auth"
	"beeos/internal/checkout"
	"beeos/internal/notifications"
	"beeos/internal/shared/config"
	"beeos/internal/shared/database"
	"beeos/internal/shared/middleware"
	"beeos/internal/shows"
	"beeos/pkg/cache"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config      *config.Config
	db          *database.DB
	notifier    *notifications.Service
	showService shows.Service // injected into checkout for showtime lookups
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, notifier *notifications.Service) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		notifier: notifier,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)

		// Show routes must come before checkout so the checkout engine can
		// reuse the cached showtime service
		r.setupShowRoutes(api)

		r.setupCheckoutRoutes(api)
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
				"service":   "beeos-cinema-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "beeos-cinema-backend",
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
			"timestamp":   time.Now(),
		})
	})
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)

	auth.SetupAuthRoutes(rg, authController)
}

// setupShowRoutes configures film, studio and showtime routes
func (r *Router) setupShowRoutes(rg *gin.RouterGroup) {
	cacheService := cache.NewService(r.db.GetRedis())

	showRepo := shows.NewRepository(r.db.GetPostgreSQL())
	showService := shows.NewService(showRepo, cacheService, r.config.Redis.ShowtimeCacheTTL)
	showController := shows.NewController(showService)

	r.showService = showService

	shows.SetupShowRoutes(rg, showController)
}

// setupCheckoutRoutes configures the checkout and transaction routes
func (r *Router) setupCheckoutRoutes(rg *gin.RouterGroup) {
	checkoutRepo := checkout.NewRepository(r.db.GetPostgreSQL())
	sessionStore := checkout.NewSessionStore(r.db.GetRedis(), r.config.Checkout.SessionTTL)
	proofStore := checkout.NewProofStore(r.config.Checkout.ProofDir)

	checkoutService := checkout.NewService(
		checkoutRepo,
		sessionStore,
		proofStore,
		r.showService,
		r.notifier,
		r.config.Checkout.ProofMaxSize,
	)
	checkoutController := checkout.NewController(checkoutService)

	checkout.SetupCheckoutRoutes(rg, checkoutController, middleware.JWTAuth(r.config))
}
