package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/DanielPopoola/proofing-gallery/internal/application"
	"github.com/DanielPopoola/proofing-gallery/internal/application/services"
	"github.com/DanielPopoola/proofing-gallery/internal/config"
	"github.com/DanielPopoola/proofing-gallery/internal/infrastructure/cache"
	"github.com/DanielPopoola/proofing-gallery/internal/infrastructure/notify"
	"github.com/DanielPopoola/proofing-gallery/internal/infrastructure/p24"
	"github.com/DanielPopoola/proofing-gallery/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/proofing-gallery/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/proofing-gallery/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/proofing-gallery/internal/worker"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting gallery service",
		"env", cfg.Primary.Env,
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"p24_endpoint", cfg.P24.Endpoint(),
	)

	ctx := context.Background()
	db, err := postgres.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	galleryRepo := postgres.NewGalleryRepository(db, cfg.P24.Currency)
	selectionRepo := postgres.NewSelectionRepository(db)
	orderRepo := postgres.NewOrderRepository(db)

	var accessCache application.AccessCodeCache
	if cfg.Redis.URL != "" {
		redisClient, err := cache.Connect(ctx, cfg.Redis, logger)
		if err != nil {
			logger.Warn("access code cache disabled", "error", err)
		} else {
			defer redisClient.Close()
			accessCache = cache.NewAccessCodeCache(redisClient, cfg.Redis.AccessTTL)
		}
	}

	notifier := buildNotifier(ctx, cfg, galleryRepo, logger)

	p24Client := p24.NewClient(cfg.P24)
	if err := p24Client.TestAccess(ctx); err != nil {
		logger.Warn("P24 credentials check failed", "error", err)
	}
	gateway := p24.NewRetryClient(p24Client, cfg.Retry)

	publicURL := strings.TrimRight(cfg.Primary.PublicURL, "/")

	selectionService := services.NewSelectionService(galleryRepo, selectionRepo, logger)
	accessService := services.NewAccessService(galleryRepo, accessCache, selectionService, logger)
	checkoutService := services.NewCheckoutService(
		galleryRepo,
		selectionRepo,
		orderRepo,
		gateway,
		services.CheckoutConfig{
			StatusURL: publicURL + handlers.CallbackPath,
			ReturnURL: cfg.Primary.ReturnURL,
		},
		logger,
	)
	callbackService := services.NewCallbackService(orderRepo, gateway, notifier, logger)
	queryService := services.NewOrderQueryService(orderRepo, galleryRepo)

	reconciler := worker.NewReconciler(
		orderRepo,
		gateway,
		callbackService,
		cfg.Worker.Interval,
		cfg.Worker.BatchSize,
		cfg.P24.PaymentWindow()+cfg.Worker.Grace,
		logger,
	)

	h := handlers.NewHandlers(
		accessService,
		selectionService,
		checkoutService,
		callbackService,
		queryService,
		reconciler,
		db,
		logger,
	)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	edge := func(next http.Handler) http.Handler {
		return middleware.CORS(cfg.CORS.AllowedOrigins)(limiter.Middleware(logger)(next))
	}

	routes, err := h.Routes(middleware.Auth([]byte(cfg.Auth.JWTSecret), cfg.Auth.Issuer, logger), edge)
	if err != nil {
		logger.Error("failed to build routes", "error", err)
		os.Exit(1)
	}

	handler := middleware.Timeout(cfg.Server.WriteTimeout)(routes)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout + time.Second,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	if cfg.Worker.Enabled {
		go reconciler.Start(workerCtx)
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	cancelWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

// buildNotifier publishes delivery events to SNS when a topic is configured
// and falls back to logging them otherwise.
func buildNotifier(ctx context.Context, cfg *config.Config, galleries application.GalleryRepository, logger *slog.Logger) application.DeliveryNotifier {
	if cfg.AWS.DeliveryTopicARN == "" {
		logger.Info("no delivery topic configured, paid orders are only logged")
		return notify.NewLogNotifier(logger)
	}

	awsCfg, err := notify.LoadAWSConfig(ctx, cfg.AWS)
	if err != nil {
		logger.Warn("AWS configuration unavailable, paid orders are only logged", "error", err)
		return notify.NewLogNotifier(logger)
	}

	return notify.NewSNSDeliveryNotifier(
		galleries,
		notify.NewSNSClient(awsCfg, cfg.AWS),
		notify.NewS3PresignClient(awsCfg, cfg.AWS),
		cfg.AWS.DeliveryTopicARN,
		cfg.AWS.PhotosBucket,
		cfg.AWS.LinkExpiry,
		logger,
	)
}
