package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	logger_adapter "github.com/RiqueAlvess/imobteste/internal/adapters/logger"
	postgres_adapter "github.com/RiqueAlvess/imobteste/internal/adapters/postgres"
	rabbitmq_adapter "github.com/RiqueAlvess/imobteste/internal/adapters/rabbitmq"
	"github.com/RiqueAlvess/imobteste/internal/adapters/rest"
	"github.com/RiqueAlvess/imobteste/internal/configs"
	"github.com/RiqueAlvess/imobteste/internal/constants"
	"github.com/RiqueAlvess/imobteste/internal/core/port"
	"github.com/RiqueAlvess/imobteste/internal/core/usecase"
	fluentlogger "github.com/RiqueAlvess/imobteste/pkg/fluent_logger"
	"github.com/RiqueAlvess/imobteste/pkg/postgres"
	"github.com/RiqueAlvess/imobteste/pkg/rabbitmq/rabbitmq_common"
	"github.com/RiqueAlvess/imobteste/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	publisher    port.EventPublisherPort
	logger       port.LoggerPort
}

// NewApp is the composition root: every dependency is created and
// wired here.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// Loggers first; everything else logs through them.
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.Logging.Level),
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.Fluent.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.Fluent.Host,
			Port:      appConfig.Fluent.Port,
			TagPrefix: appConfig.Fluent.TagPrefix,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.Logging.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.Fluent.Enabled,
	})

	// Storage
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	propertyStorage, err := postgres_adapter.NewPropertyStorageAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create property storage adapter: %w", err)
	}
	ownerStorage, err := postgres_adapter.NewOwnerStorageAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create owner storage adapter: %w", err)
	}
	clientStorage, err := postgres_adapter.NewClientStorageAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create client storage adapter: %w", err)
	}
	amenityStorage, err := postgres_adapter.NewAmenityStorageAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create amenity storage adapter: %w", err)
	}
	appLogger.Info("Postgres storage adapters initialized.", nil)

	// Event publishing; without a broker URL writes simply skip events.
	var publisher port.EventPublisherPort
	if appConfig.RabbitMQ.URL != "" {
		connManagerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"})
		connManager, err := rabbitmq_common.GetManager(appConfig.RabbitMQ.URL, rabbitmq_adapter.NewPkgLoggerBridge(connManagerLogger))
		if err != nil {
			appLogger.Error("Failed to create connection manager", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to create connection manager: %w", err)
		}
		appLogger.Info("RabbitMQ Connection Manager initialized.", nil)

		producerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})
		eventProducer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
			Config:                   rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL},
			ExchangeName:             constants.CrmEventsExchange,
			ExchangeType:             "direct",
			DurableExchange:          true,
			DeclareExchangeIfMissing: true,
			Logger:                   rabbitmq_adapter.NewPkgLoggerBridge(producerLogger),
		}, connManager)
		if err != nil {
			appLogger.Error("Failed to create event producer", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to create event producer: %w", err)
		}

		publisher, err = rabbitmq_adapter.NewEventPublisherAdapter(eventProducer)
		if err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("failed to create event publisher adapter: %w", err)
		}
		appLogger.Info("RabbitMQ Event Publisher initialized.", nil)
	} else {
		publisher = rabbitmq_adapter.NewNoopPublisher()
		appLogger.Warn("RABBITMQ_URL not set, event publishing disabled", nil)
	}

	// Use cases
	getHomePageUseCase := usecase.NewGetHomePageUseCase(propertyStorage)
	findPropertiesUseCase := usecase.NewFindPropertiesUseCase(propertyStorage)
	getPropertyDetailsUseCase := usecase.NewGetPropertyDetailsUseCase(propertyStorage)
	registerLeadUseCase := usecase.NewRegisterLeadUseCase(clientStorage, publisher)

	propertyAdminUseCase := usecase.NewPropertyAdminUseCase(propertyStorage, publisher)
	ownerAdminUseCase := usecase.NewOwnerAdminUseCase(ownerStorage)
	clientAdminUseCase := usecase.NewClientAdminUseCase(clientStorage, publisher)
	amenityAdminUseCase := usecase.NewAmenityAdminUseCase(amenityStorage)

	appLogger.Info("All use cases initialized.", nil)

	// REST API Server
	publicHandler := rest.NewPublicHandler(getHomePageUseCase, findPropertiesUseCase, getPropertyDetailsUseCase, registerLeadUseCase)
	propertyAdminHandler := rest.NewPropertyAdminHandler(propertyAdminUseCase)
	crmAdminHandler := rest.NewCrmAdminHandler(ownerAdminUseCase, clientAdminUseCase, amenityAdminUseCase)

	apiServer := rest.NewServer(appConfig.Rest.PORT, appConfig.Rest.AllowedOrigins,
		publicHandler, propertyAdminHandler, crmAdminHandler, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:       appConfig,
		dbPool:       dbPool,
		apiServer:    apiServer,
		fluentClient: fluentClient,
		publisher:    publisher,
		logger:       appLogger,
	}, nil
}

// Run starts the HTTP server and blocks until a shutdown signal or a
// fatal component error.
func (a *App) Run() error {
	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.publisher != nil {
			if err := a.publisher.Close(); err != nil {
				a.logger.Error("Error closing event publisher", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	}

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
