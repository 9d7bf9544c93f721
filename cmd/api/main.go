package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/meeting-insights/pkg/validator"

	"github.com/johnquangdev/meeting-insights/internal/adapter/handler"
	"github.com/johnquangdev/meeting-insights/internal/adapter/repository"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-insights/internal/usecase/analytics"
	"github.com/johnquangdev/meeting-insights/internal/usecase/audio"
	"github.com/johnquangdev/meeting-insights/internal/usecase/calendar"
	"github.com/johnquangdev/meeting-insights/internal/usecase/export"
	"github.com/johnquangdev/meeting-insights/internal/usecase/meetings"
	"github.com/johnquangdev/meeting-insights/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate in CI/CD.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Running migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize report cache
	var cacheStore cache.Store
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisStore, err := cache.NewRedisStore(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		cacheStore = redisStore
	} else {
		log.Println("📦 Redis disabled, using in-memory report cache")
		cacheStore = cache.NewMemoryStore()
	}

	// Initialize object storage for uploaded recordings
	var minioClient *storage.MinIOClient
	if cfg.Storage.Enabled {
		log.Println("🗄️  Connecting to object storage...")
		minioClient, err = storage.NewMinIOClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to object storage: %v", err)
		}
		log.Println("✅ Object storage connected successfully")
	} else {
		log.Println("🗄️  Object storage disabled, recording uploads will be rejected")
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	historyRepo := repository.NewHistoryRepository(db)

	// Initialize analytics pipeline
	log.Println("📊 Initializing analytics engine...")
	analyticsService := analytics.NewService(logger)
	suggestionEngine := calendar.NewSuggestionEngine(logger)
	meetingService := meetings.NewService(
		analyticsService,
		suggestionEngine,
		historyRepo,
		cacheStore,
		cfg.Analytics.CacheTTL,
		logger,
	)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	meetingHandler := handler.NewMeetingHandler(meetingService, export.NewExporter(), minioClient, logger)
	audioHandler := handler.NewAudioHandler(audio.NewEnhancer(logger), logger)
	log.Println("✅ Handlers initialized successfully")

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, meetingHandler, audioHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
