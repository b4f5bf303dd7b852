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
	"github.com/takerapp/taker-go/services/dispatch/gateway"
	"github.com/takerapp/taker-go/services/dispatch/handler"
	"github.com/takerapp/taker-go/services/dispatch/repository"
	"github.com/takerapp/taker-go/services/dispatch/usecase"
)

func main() {
	appName := "dispatch-service"
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

	jobQueue := scheduler.NewQueue(constants.QueueDispatch, redisClient, configs.Scheduler)

	pushClient, err := push.NewClient(context.Background(), configs.Firebase)
	if err != nil {
		logger.Fatal("Failed to initialize push client", logger.Err(err))
	}

	metrics := observability.NewMetrics()

	// Initialize repositories
	tripRepo := repository.NewTripRepo(postgresClient.GetDB())
	shoemakerRepo := repository.NewShoemakerRepo(postgresClient.GetDB())
	offerStore := repository.NewOfferStore(redisClient)

	// Initialize gateway and usecase
	dispatchGW := gateway.NewDispatchGW(natsClient, producer, pushClient)
	dispatchUC := usecase.NewDispatchUC(configs, tripRepo, shoemakerRepo, offerStore, dispatchGW, jobQueue, metrics)

	// Register job handlers and start the worker loop
	handler.RegisterJobHandlers(jobQueue, dispatchUC, metrics)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	go func() {
		if err := jobQueue.Run(workerCtx); err != nil {
			logger.Error("Scheduler worker stopped with error", logger.Err(err))
		}
	}()

	// Start NATS consumers for shoemaker responses
	natsHandler := handler.NewNatsHandler(natsClient, dispatchUC)
	if err := natsHandler.Start(workerCtx); err != nil {
		logger.Fatal("Failed to start NATS consumers", logger.Err(err))
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(logger.EchoMiddleware())

	health.RegisterHealthEndpoints(e, appName)
	observability.RegisterMetricsEndpoint(e)

	// Graceful shutdown
	shutdownManager := server.NewShutdownManager()
	shutdownManager.Register(func(ctx context.Context) error {
		natsHandler.Stop()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		stopWorker()
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
