package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hotel-desk/service-booking/internal/application"
	"github.com/hotel-desk/service-booking/internal/config"
	"github.com/hotel-desk/service-booking/internal/database"
	bookingDomain "github.com/hotel-desk/service-booking/internal/domain/booking"
	bookingEvents "github.com/hotel-desk/service-booking/internal/events"
	"github.com/hotel-desk/service-booking/internal/handler"
	"github.com/hotel-desk/service-booking/internal/health"
	"github.com/hotel-desk/service-booking/internal/logger"
	"github.com/hotel-desk/service-booking/internal/messaging"
	"github.com/hotel-desk/service-booking/internal/middleware"
	"github.com/hotel-desk/service-booking/internal/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, messaging.ServiceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-booking",
		zap.String("port", cfg.Port),
		zap.String("storage", cfg.StorageDriver),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Open storage
	stores, checks, closeStorage := openStorage(ctx, cfg, log)
	defer closeStorage()

	// Initialize Kafka producer
	var publisher messaging.Publisher = messaging.NoopPublisher{}
	if cfg.KafkaConfig.Enabled() {
		publisher = messaging.NewProducer(cfg.KafkaConfig.Brokers, log)
	} else {
		log.Info("no kafka brokers configured, booking events are not published")
	}
	defer func() { _ = publisher.Close() }()

	// Initialize application services
	hotelService := application.NewHotelService(stores.Hotels, log)
	roomService := application.NewRoomService(stores.Rooms, stores.Hotels, log)
	clientService := application.NewClientService(stores.Clients, log)
	bookingService := application.NewBookingService(
		stores.Bookings,
		stores.Hotels,
		stores.Rooms,
		stores.Clients,
		bookingDomain.NewNightlyPricingStrategy(),
		publisher,
		log,
	)

	// Start booking command consumer in a goroutine
	if cfg.KafkaConfig.Enabled() {
		groupID := cfg.KafkaConfig.GroupPrefix + "booking-service"
		commandConsumer := bookingEvents.NewBookingCommandConsumer(
			cfg.KafkaConfig.Brokers,
			groupID,
			bookingService,
			log,
		)
		defer func() { _ = commandConsumer.Close() }()

		go func() {
			log.Info("starting booking command consumer")
			if err := commandConsumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("booking command consumer error", zap.Error(err))
			}
		}()
	}

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// Register health check routes
	health.NewHandler(messaging.ServiceName, checks).RegisterRoutes(router)

	// Register routes
	handler.NewHotelHandler(hotelService).RegisterRoutes(&router.RouterGroup)
	handler.NewRoomHandler(roomService).RegisterRoutes(&router.RouterGroup)
	handler.NewClientHandler(clientService).RegisterRoutes(&router.RouterGroup)
	handler.NewBookingHandler(bookingService).RegisterRoutes(&router.RouterGroup)
	handler.NewAdminBookingHandler(bookingService).RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-booking...")

	// Cancel the consumer context
	cancel()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-booking stopped")
}

// openStorage builds the repositories for the configured driver together with
// the readiness checks of the backing store.
func openStorage(ctx context.Context, cfg *config.ServiceConfig, log *zap.Logger) (repository.Stores, map[string]health.Check, func()) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := database.Connect(cfg.DBConfig, log)
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}

		// Run database migrations
		if cfg.AppEnv == "development" {
			if err := db.AutoMigrate(repository.AllModels()...); err != nil {
				log.Fatal("failed to run auto-migration", zap.Error(err))
			}
			log.Info("database migration completed (dev auto-migrate)")
		} else if err := database.RunMigrations(cfg.DBConfig.DatabaseURL(), cfg.MigrationsPath, log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}

		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("failed to get sql.DB", zap.Error(err))
		}
		checks := map[string]health.Check{"postgres": sqlDB.PingContext}
		return repository.NewGormStores(db), checks, func() { _ = sqlDB.Close() }

	case config.StorageMongo:
		mdb, err := database.ConnectMongo(ctx, cfg.MongoConfig, log)
		if err != nil {
			log.Fatal("failed to connect to mongo", zap.Error(err))
		}
		checks := map[string]health.Check{
			"mongo": func(ctx context.Context) error { return mdb.Client().Ping(ctx, nil) },
		}
		closeFn := func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = mdb.Client().Disconnect(disconnectCtx)
		}
		return repository.NewMongoStores(mdb), checks, closeFn

	case config.StorageMemory:
		log.Warn("using in-memory storage, data is lost on restart")
		return repository.NewMemoryStores(), nil, func() {}

	default:
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			log.Fatal("failed to create data directory", zap.Error(err), zap.String("dir", cfg.DataDir))
		}
		return repository.NewFileStores(cfg.DataDir), nil, func() {}
	}
}
