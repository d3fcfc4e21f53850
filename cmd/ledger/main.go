package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/ledger/internal/pkg/circuitbreaker"
	"github.com/piresc/ledger/internal/pkg/config"
	"github.com/piresc/ledger/internal/pkg/database"
	"github.com/piresc/ledger/internal/pkg/health"
	httppkg "github.com/piresc/ledger/internal/pkg/http"
	"github.com/piresc/ledger/internal/pkg/logger"
	"github.com/piresc/ledger/internal/pkg/middleware"
	natspkg "github.com/piresc/ledger/internal/pkg/nats"
	nrpkg "github.com/piresc/ledger/internal/pkg/newrelic"
	"github.com/piresc/ledger/internal/pkg/retry"
	"github.com/piresc/ledger/internal/pkg/server"
	"github.com/piresc/ledger/services/ledger"
	"github.com/piresc/ledger/services/ledger/gateway"
	"github.com/piresc/ledger/services/ledger/handler"
	httpHandler "github.com/piresc/ledger/services/ledger/handler/http"
	"github.com/piresc/ledger/services/ledger/repository"
	"github.com/piresc/ledger/services/ledger/usecase"
)

func main() {
	appName := "ledger-service"
	configs := config.InitConfig("config/ledger.env")

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	if configs.Webhook.URL == "" {
		zapLogger.Fatal("WEBHOOK_URL is required")
	}

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register("logger", func(ctx context.Context) error { return zapLogger.Close() })
	if nrApp != nil {
		shutdown.Register("newrelic", func(ctx context.Context) error {
			nrApp.Shutdown(5 * time.Second)
			return nil
		})
	}

	checks := map[string]health.Check{}

	// Repository
	var ledgerRepo ledger.LedgerRepo
	switch configs.Database.Driver {
	case "memory":
		zapLogger.Warn("Using in-memory ledger store, data is lost on restart")
		ledgerRepo = repository.NewMemoryRepo()
	default:
		postgresClient, err := database.NewPostgresClient(configs.Database)
		if err != nil {
			zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
		}
		shutdown.Register("postgres", func(ctx context.Context) error { return postgresClient.Close() })
		checks["postgres"] = postgresClient.Ping
		ledgerRepo = repository.NewPostgresRepo(postgresClient.GetDB())
	}

	// Redis holds refresh sessions written by the identity service
	var sessions *gateway.SessionStore
	if configs.Redis.Enabled {
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		shutdown.Register("redis", func(ctx context.Context) error { return redisClient.Close() })
		checks["redis"] = redisClient.Ping
		sessions = gateway.NewSessionStore(redisClient)
	}

	var events *gateway.NATSPublisher
	if configs.NATS.Enabled {
		natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
		}
		shutdown.Register("nats", func(ctx context.Context) error {
			natsClient.Close()
			return nil
		})
		checks["nats"] = func(ctx context.Context) error { return natsClient.Ping() }
		events = gateway.NewNATSPublisher(natsClient)
	}

	// Webhook client
	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = configs.Webhook.MaxRetries
	webhookClient := httppkg.NewEnhancedClient(
		zapLogger,
		time.Duration(configs.Webhook.Timeout)*time.Second,
		retryCfg,
		circuitbreaker.DefaultConfig(),
	)
	checks["webhook"] = func(ctx context.Context) error {
		for host, state := range webhookClient.BreakerStates() {
			if state == circuitbreaker.StateOpen.String() {
				return fmt.Errorf("circuit open for %s", host)
			}
		}
		return nil
	}

	ledgerGW := gateway.NewLedgerGW(gateway.NewWebhookNotifier(webhookClient, configs.Webhook.URL), events, sessions)
	ledgerUC := usecase.NewLedgerUC(configs, ledgerRepo, ledgerGW)

	ledgerHandler := handler.NewHandler(
		httpHandler.NewTransactionHandler(ledgerUC),
		httpHandler.NewAccountHandler(ledgerUC),
		configs,
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecovery(zapLogger))
	e.Use(echomw.RequestID())
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, configs.App.Version, checks)
	ledgerHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server, shutdown)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.String("app", appName), logger.Err(err))
	}
}
