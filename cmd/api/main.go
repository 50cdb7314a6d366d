package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/ticket-board/internal/api/http"
	"github.com/spec-kit/ticket-board/internal/api/http/handlers"
	"github.com/spec-kit/ticket-board/internal/config"
	"github.com/spec-kit/ticket-board/internal/events"
	"github.com/spec-kit/ticket-board/internal/observability"
	"github.com/spec-kit/ticket-board/internal/persistence"
	"github.com/spec-kit/ticket-board/internal/service"
	"github.com/spec-kit/ticket-board/internal/upstream"
	"github.com/spec-kit/ticket-board/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if !cfg.Upstream.Configured() {
		logger.Warn("ticket api credentials missing; /api and / will answer with a configuration error",
			zap.Strings("missing", cfg.Upstream.MissingCredentials()))
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var syncStore service.SyncStatusStore = persistence.NewMemorySyncStatusStore()
	if redis != nil {
		syncStore = persistence.NewRedisSyncStatusStore(redis.Client, persistence.DefaultSyncStatusKey)
	}

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	syncService := service.NewSyncService(dispatcher, syncStore, logger)
	worker.StartSyncWorker(syncService)

	signer := upstream.NewSigner(cfg.Upstream.AuthScheme, cfg.Upstream.PublicKey, cfg.Upstream.APIKey)
	apiClient := upstream.NewClient(signer,
		upstream.BaseURL(cfg.Upstream.BaseURL),
		upstream.Timeout(cfg.Upstream.Timeout()),
		upstream.Logger(logger),
		upstream.WithRecorder(metrics),
	)

	ticketService := service.NewTicketService(service.TicketDependencies{
		API:        apiClient,
		Config:     cfg.Upstream,
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: cfg.App.Env == "production",
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:  handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, cfg.Upstream, redis, syncService),
		Tickets: handlers.NewTicketsHandler(ticketService),
		Board:   handlers.NewBoardHandler(ticketService, cfg.Board, logger),
		Metrics: handlers.NewMetricsHandler(metrics),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	ctx := context.Background()
	if timeout := cfg.App.RequestTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	_ = app.ShutdownWithContext(ctx)
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
