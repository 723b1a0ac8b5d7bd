package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/AntonStoeckl/library-backend/library/httpapi"
	"github.com/AntonStoeckl/library-backend/library/shell"
	"github.com/AntonStoeckl/library-backend/library/shell/catalogcache"
	"github.com/AntonStoeckl/library-backend/library/shell/config"
	"github.com/AntonStoeckl/library-backend/library/shell/eventpublisher"
	"github.com/AntonStoeckl/library-backend/store/oteladapters"
	"github.com/AntonStoeckl/library-backend/store/sqlengine"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func newServeCmd() *cobra.Command {
	var skipMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, !skipMigrations)
		},
	}

	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "Do not migrate the schema on startup")

	return cmd
}

//nolint:funlen
func serve(ctx context.Context, migrate bool) error {
	logger := config.NewLogger(cfg, os.Stderr)
	slog.SetDefault(logger)

	if cfg.UsesInsecureSessionSecret() {
		logger.Warn("using the built-in development session secret, set LIBRARY_SESSION_SECRET in production")
	}

	providers, err := config.SetupObservability(ctx, cfg)
	if err != nil {
		return fmt.Errorf("setting up observability: %w", err)
	}
	defer func() {
		if shutdownErr := providers.Shutdown(); shutdownErr != nil {
			logger.Error("observability shutdown failed", "error", shutdownErr.Error())
		}
	}()

	contextualLogger := oteladapters.NewSlogBridgeLoggerWithHandler(logger.Handler())
	metrics := oteladapters.NewMetricsCollector(providers.MeterProvider.Meter(cfg.ServiceName))
	tracing := oteladapters.NewTracingCollector(providers.TracerProvider.Tracer(cfg.ServiceName))

	repo, closeRepo, err := config.OpenRepository(ctx, cfg,
		sqlengine.WithLogger(logger),
		sqlengine.WithContextualLogger(contextualLogger),
		sqlengine.WithMetrics(metrics),
		sqlengine.WithTracing(tracing),
	)
	if err != nil {
		return fmt.Errorf("opening repository: %w", err)
	}
	defer closeRepo()

	if migrate {
		if err := repo.Migrate(ctx); err != nil {
			return fmt.Errorf("migrating schema: %w", err)
		}
	}

	publisher, closePublisher, err := newEventPublisher(logger)
	if err != nil {
		return err
	}
	defer closePublisher()

	sessions, err := httpapi.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL, httpapi.WithSecureCookies(cfg.SecureCookies))
	if err != nil {
		return err
	}

	api, err := httpapi.NewServer(repo, sessions,
		httpapi.WithLogger(logger),
		httpapi.WithContextualLogger(contextualLogger),
		httpapi.WithMetrics(metrics),
		httpapi.WithTracing(tracing),
		httpapi.WithEventPublisher(publisher),
		httpapi.WithCatalogCache(catalogcache.New(cfg.CatalogCacheSize, cfg.CatalogCacheTTL)),
		httpapi.WithCORSAllowedOrigins(cfg.CORSAllowedOrigins...),
	)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	healthServer := health.NewServer()
	grpcServer := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	errChan := make(chan error, 2)

	if cfg.GRPCHealthAddr != "" {
		listener, err := net.Listen("tcp", cfg.GRPCHealthAddr)
		if err != nil {
			return fmt.Errorf("grpc health listener: %w", err)
		}

		go func() {
			logger.Info("grpc health server listening", "addr", cfg.GRPCHealthAddr)
			if err := grpcServer.Serve(listener); err != nil {
				errChan <- fmt.Errorf("grpc health server: %w", err)
			}
		}()
	}

	go func() {
		logger.Info("http server listening", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server: %w", err)
		}
	}()

	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case runErr = <-errChan:
		logger.Error("server failed", "error", runErr.Error())
	}

	healthServer.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("http shutdown: %w", err))
	}

	grpcServer.GracefulStop()
	logger.Info("library service stopped")

	return runErr
}

// newEventPublisher connects to RabbitMQ when an AMQP URL is configured, otherwise events are dropped.
func newEventPublisher(logger *slog.Logger) (shell.EventPublisher, func(), error) {
	if cfg.AMQPURL == "" {
		return eventpublisher.Noop{}, func() {}, nil
	}

	publisher, err := eventpublisher.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to amqp: %w", err)
	}

	logger.Info("publishing events to amqp", "exchange", cfg.AMQPExchange)

	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("closing amqp publisher failed", "error", err.Error())
		}
	}, nil
}
