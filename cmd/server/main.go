package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yourorg/stocksnap/internal/auth"
	"github.com/yourorg/stocksnap/internal/config"
	"github.com/yourorg/stocksnap/internal/events"
	"github.com/yourorg/stocksnap/internal/handler"
	"github.com/yourorg/stocksnap/internal/repository"
	"github.com/yourorg/stocksnap/internal/search"
	"github.com/yourorg/stocksnap/internal/service"
	"github.com/yourorg/stocksnap/internal/storage"
	"github.com/yourorg/stocksnap/internal/view"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() {
	// .env is optional
	_ = godotenv.Load()
}

func main() {
	// Load configuration
	configPath := os.Getenv("STOCKSNAP_CONFIG")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set up logger
	logger, err := createLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// Open the session store
	store, err := storage.NewKVStore(ctx, &cfg.Storage, logger)
	if err != nil {
		logger.Fatal("Failed to open session store", zap.Error(err))
	}
	defer store.Close()

	// Catalog and free-text index
	catalog := repository.NewMockCatalog(logger)
	companies, err := catalog.Companies(ctx)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}
	index, err := search.NewDiscoverIndex(companies, logger)
	if err != nil {
		logger.Fatal("Failed to build discover index", zap.Error(err))
	}
	defer index.Close()

	// Initialize Kafka producer (if enabled)
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Kafka.Enabled && len(cfg.Kafka.Brokers) > 0 {
		publisher = events.NewProducer(&cfg.Kafka, logger)
		logger.Info("Initialized Kafka producer",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("topic", cfg.Kafka.Topic))
	}
	defer publisher.Close()

	// Create services
	searchService := service.NewSearchService(catalog, index, logger)
	sessionService := service.NewSessionService(store, cfg.Storage.Key, catalog, publisher, logger)
	if err := sessionService.Restore(ctx); err != nil {
		logger.Fatal("Failed to restore session", zap.Error(err))
	}
	onePagerService := service.NewOnePagerService(catalog, logger)
	shareService := service.NewShareService(
		catalog,
		service.UnsupportedSharer{},
		service.SystemClipboard{},
		cfg.Share.BaseURL,
		cfg.Share.ResetDelay,
		logger,
	)
	navigator := view.NewNavigator(searchService, sessionService, cfg.Search.Delay, logger)
	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenDuration)

	if cfg.Admin.KeyHash == "" {
		logger.Info("Admin routes disabled, no admin key hash configured")
	}

	// Create HTTP server
	router := handler.SetupRouter(handler.Handlers{
		Company:  handler.NewCompanyHandler(searchService, onePagerService, shareService, cfg.Search.DiscoverLimit, logger),
		Session:  handler.NewSessionHandler(sessionService, navigator, issuer, logger),
		Favorite: handler.NewFavoriteHandler(sessionService, logger),
		View:     handler.NewViewHandler(navigator, logger),
		Admin:    handler.NewAdminHandler(sessionService, logger),
	}, handler.RouterConfig{
		Sessions:     sessionService,
		Issuer:       issuer,
		AdminKeyHash: cfg.Admin.KeyHash,
	}, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server",
			zap.String("port", cfg.Server.Port),
			zap.String("storage", cfg.Storage.Driver))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Create a deadline for server shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited properly")
}

func createLogger(level, format string) (*zap.Logger, error) {
	// Parse log level
	var zapLevel zap.AtomicLevel
	switch level {
	case "debug":
		zapLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		zapLevel = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapLevel = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		zapLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	if format == "console" {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	config := zap.Config{
		Level:            zapLevel,
		Development:      false,
		Encoding:         format,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
