package main

import (
	"beeos/api/routes"
	"beeos/internal/notifications"
	"beeos/internal/shared/config"
	"beeos/internal/shared/database"
	"beeos/internal/shared/middleware"
	"beeos/pkg/logger"
	"beeos/pkg/ratelimit"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	appLogger := logger.GetDefault()

	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	cfg := config.Load()

	gin.SetMode(cfg.GinMode)

	db, err := database.InitDB(cfg)
	if err != nil {
		appLogger.WithError(err).Error("failed to connect to database")
		os.Exit(1)
	}
	defer db.Close()

	// Rate limiter
	var rateLimiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = ratelimit.NewRateLimiter(db.GetRedis(), &ratelimit.Config{
			Enabled:          cfg.RateLimit.Enabled,
			WindowDuration:   cfg.RateLimit.WindowDuration,
			DefaultRequests:  cfg.RateLimit.DefaultRequests,
			PublicRequests:   cfg.RateLimit.PublicRequests,
			AuthRequests:     cfg.RateLimit.AuthRequests,
			CheckoutRequests: cfg.RateLimit.CheckoutRequests,
			AdminRequests:    cfg.RateLimit.AdminRequests,
			WhitelistedIPs:   cfg.RateLimit.WhitelistedIPs,
		})
		appLogger.Info("Rate limiter initialized",
			"enabled", cfg.RateLimit.Enabled,
			"window", cfg.RateLimit.WindowDuration,
			"default_requests", cfg.RateLimit.DefaultRequests,
		)
	} else {
		appLogger.Info("Rate limiting disabled")
	}

	// Notification producer (optional, checkout degrades to log-only)
	var producer notifications.Producer
	if cfg.Kafka.Enabled {
		producerConfig := notifications.DefaultKafkaProducerConfig()
		producerConfig.Brokers = cfg.Kafka.Brokers
		producerConfig.Topic = cfg.Kafka.NotificationTopic

		producer, err = notifications.NewKafkaProducer(producerConfig, appLogger)
		if err != nil {
			appLogger.WithError(err).Error("failed to initialize Kafka producer, notifications will be log-only")
			producer = nil
		}
	} else {
		appLogger.Info("Kafka disabled, notifications will be log-only")
	}

	notifier := notifications.NewService(producer, appLogger)
	defer func() {
		if err := notifier.Close(); err != nil {
			appLogger.WithError(err).Error("error closing notification producer")
		}
	}()

	router := setupRouter(cfg, db, rateLimiter, notifier)

	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	go func() {
		appLogger.Info("Server running",
			"address", cfg.GetServerAddress(),
			"health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port),
			"api_status", fmt.Sprintf("http://localhost:%s%s/status", cfg.Port, cfg.GetAPIBasePath()),
			"version", cfg.APIVersion,
			"rate_limiting", cfg.RateLimit.Enabled,
			"kafka", cfg.Kafka.Enabled,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Error("server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.WithError(err).Error("forced shutdown")
	}

	appLogger.Info("Server exited gracefully")
}

func setupRouter(cfg *config.Config, db *database.DB, rateLimiter *ratelimit.RateLimiter, notifier *notifications.Service) *gin.Engine {
	engine := gin.New()
	appLogger := logger.GetDefault()

	engine.Use(middleware.RequestLogger(appLogger), gin.Recovery())

	engine.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter))
	}

	appRouter := routes.NewRouter(cfg, db, notifier)
	appRouter.SetupRoutes(engine)

	return engine
}
