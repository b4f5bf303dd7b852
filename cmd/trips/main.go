package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/takerapp/taker-go/internal/pkg/config"
	"github.com/takerapp/taker-go/internal/pkg/constants"
	"github.com/takerapp/taker-go/internal/pkg/database"
	"github.com/takerapp/taker-go/internal/pkg/health"
	"github.com/takerapp/taker-go/internal/pkg/logger"
	natspkg "github.com/takerapp/taker-go/internal/pkg/nats"
	"github.com/takerapp/taker-go/internal/pkg/observability"
	"github.com/takerapp/taker-go/internal/pkg/push"
	"github.com/takerapp/taker-go/internal/pkg/scheduler"
	"github.com/takerapp/taker-go/internal/pkg/server"
	wspkg "github.com/takerapp/taker-go/internal/pkg/websocket"
	"github.com/takerapp/taker-go/services/trips/gateway"
	"github.com/takerapp/taker-go/services/trips/handler"
	"github.com/takerapp/taker-go/services/trips/repository"
	"github.com/takerapp/taker-go/services/trips/usecase"
)

func main() {
	appName := "trips-service"
	configs := config.InitConfig(appName)

	zapLogger, err := logger.NewZapLogger(configs.Logger, appName)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NATS client
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	producer := natspkg.NewProducer(natsClient)

	// The dispatch service consumes this queue; the trips service only
	// enqueues onto it.
	jobQueue := scheduler.NewQueue(constants.QueueDispatch, redisClient, configs.Scheduler)

	wsManager := wspkg.NewManager(configs.JWT)

	pushClient, err := push.NewClient(context.Background(), configs.Firebase)
	if err != nil {
		logger.Fatal("Failed to initialize push client", logger.Err(err))
	}

	metrics := observability.NewMetrics()

	// Initialize repositories
	tripRepo := repository.NewTripRepo(configs, postgresClient.GetDB())
	walletRepo := repository.NewWalletRepo(postgresClient.GetDB())

	// Initialize gateway and usecase
	tripGW := gateway.NewTripGW(producer, wsManager, pushClient)
	tripUC := usecase.NewTripUC(configs, tripRepo, walletRepo, tripGW, jobQueue, metrics)

	// Initialize handlers
	tripHandler := handler.NewHandler(tripUC, wsManager, producer, configs)

	// Relay realtime events published by the dispatch service
	wsRelay := handler.NewWSRelayHandler(natsClient, wsManager)
	if err := wsRelay.Start(); err != nil {
		logger.Fatal("Failed to start websocket relay", logger.Err(err))
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(logger.EchoMiddleware())

	health.RegisterHealthEndpoints(e, appName)
	observability.RegisterMetricsEndpoint(e)
	tripHandler.RegisterRoutes(e)

	// Graceful shutdown
	shutdownManager := server.NewShutdownManager()
	shutdownManager.Register(func(ctx context.Context) error {
		wsRelay.Stop()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	srv := server.NewGracefulServer(e, configs.Server.Port, configs.Server.ShutdownTimeout, shutdownManager)
	if err := srv.Start(); err != nil {
		logger.Error("Server stopped with error", logger.Err(err))
	}
	logger.Info("Server exiting gracefully")
}
