package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/plutoride/vendor-app/internal/pkg/config"
	"github.com/plutoride/vendor-app/internal/pkg/database"
	"github.com/plutoride/vendor-app/internal/pkg/health"
	httpclient "github.com/plutoride/vendor-app/internal/pkg/http"
	"github.com/plutoride/vendor-app/internal/pkg/logger"
	"github.com/plutoride/vendor-app/internal/pkg/middleware"
	nsqpkg "github.com/plutoride/vendor-app/internal/pkg/nsq"
	"github.com/plutoride/vendor-app/internal/pkg/server"
	"github.com/plutoride/vendor-app/internal/pkg/storage"
	"github.com/plutoride/vendor-app/services/balance"
	balanceHandler "github.com/plutoride/vendor-app/services/balance/handler/http"
	balanceRepo "github.com/plutoride/vendor-app/services/balance/repository"
	balanceUsecase "github.com/plutoride/vendor-app/services/balance/usecase"
	"github.com/plutoride/vendor-app/services/booking"
	bookingGW "github.com/plutoride/vendor-app/services/booking/gateway/http"
	decisionGW "github.com/plutoride/vendor-app/services/booking/gateway/nsq"
	bookingHandler "github.com/plutoride/vendor-app/services/booking/handler/http"
	"github.com/plutoride/vendor-app/services/booking/poller"
	bookingUsecase "github.com/plutoride/vendor-app/services/booking/usecase"
	sessionGW "github.com/plutoride/vendor-app/services/session/gateway/http"
	sessionHandler "github.com/plutoride/vendor-app/services/session/handler/http"
	sessionUsecase "github.com/plutoride/vendor-app/services/session/usecase"
)

func main() {
	appName := "vendor-app"
	configs := config.InitConfig(".env")

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("environment", configs.App.Environment),
		zap.String("api_base_url", configs.API.BaseURL),
	)

	shutdownManager := server.NewShutdownManager(zapLogger)
	var checkers []health.Checker

	// Local profile store
	var store storage.Store
	switch configs.Storage.Backend {
	case "redis":
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		store = storage.NewRedisStore(redisClient)
	default:
		fileStore, err := storage.NewFileStore(configs.Storage.Dir)
		if err != nil {
			zapLogger.Fatal("Failed to open local storage", zap.Error(err))
		}
		store = fileStore
	}
	shutdownManager.Register(func(ctx context.Context) error {
		return store.Close()
	})
	checkers = append(checkers, health.CheckerFunc{
		CheckerName: "storage",
		Fn: func(ctx context.Context) error {
			if _, err := store.Get(ctx, "token"); err != nil && !errors.Is(err, storage.ErrNotFound) {
				return err
			}
			return nil
		},
	})

	// Remote service client and gateways
	apiClient := httpclient.NewBearerClient(configs.API.BaseURL, time.Duration(configs.API.Timeout)*time.Second)
	userGW := sessionGW.NewUserClient(apiClient)
	bookingGateway := bookingGW.NewBookingClient(apiClient)

	// Decision event publisher, optional
	var publisher booking.DecisionPublisher
	if configs.NSQ.Address != "" {
		producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", zap.Error(err))
		}
		publisher = decisionGW.NewDecisionGateway(producer, configs.NSQ.Topic)
		shutdownManager.Register(func(ctx context.Context) error {
			producer.Stop()
			return nil
		})
	}

	// Balance ledger, database-backed when configured
	var ledger balance.BalanceRepo
	if configs.Database.Host != "" {
		postgresClient, err := database.NewPostgresClient(configs.Database)
		if err != nil {
			zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		shutdownManager.Register(func(ctx context.Context) error {
			return postgresClient.Close()
		})
		ledger = balanceRepo.NewBalanceRepository(postgresClient.GetDB())
		checkers = append(checkers, health.CheckerFunc{
			CheckerName: "ledger",
			Fn: func(ctx context.Context) error {
				return postgresClient.GetDB().PingContext(ctx)
			},
		})
	} else {
		zapLogger.Info("No ledger database configured, serving the sample balance sheet")
		ledger = balanceRepo.NewStaticBalanceRepository()
	}

	// Usecases
	sessionUC := sessionUsecase.NewSessionManager(store, userGW)
	bookingUC := bookingUsecase.NewBookingUC(bookingGateway, publisher)
	balanceUC := balanceUsecase.NewBalanceUC(ledger)

	sessionUC.Restore(context.Background())
	if sessionUC.Current().Authenticated() {
		zapLogger.Info("Restored session from local storage")
	}

	// Background booking refresh
	pollerCtx, stopPoller := context.WithCancel(context.Background())
	defer stopPoller()
	if configs.Poller.Enabled {
		interval := time.Duration(configs.Poller.Interval) * time.Second
		refresher := poller.New(bookingUC, sessionUC, interval, nil)
		refresher.Start(pollerCtx)
	}

	// HTTP surface
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLogger(zapLogger))

	health.RegisterHealthEndpoints(e, appName, checkers...)

	protected := e.Group("", middleware.RequireSession(sessionUC))

	sessionHandler.NewSessionHandler(sessionUC).RegisterRoutes(e, protected)
	bookingHandler.NewBookingHandler(bookingUC, sessionUC).RegisterRoutes(protected)
	balanceHandler.NewBalanceHandler(balanceUC).RegisterRoutes(protected)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", zap.Error(err))
	}

	stopPoller()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown failed", zap.Error(err))
	}
}
