package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	promgrpc "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	webshopv1 "github.com/vladislavdragonenkov/webshop/api/webshop/v1"
	"github.com/vladislavdragonenkov/webshop/internal/auth"
	"github.com/vladislavdragonenkov/webshop/internal/fixtures"
	"github.com/vladislavdragonenkov/webshop/internal/health"
	"github.com/vladislavdragonenkov/webshop/internal/metrics"
	"github.com/vladislavdragonenkov/webshop/internal/service/catalog"
	grpcsvc "github.com/vladislavdragonenkov/webshop/internal/service/grpc"
	"github.com/vladislavdragonenkov/webshop/internal/service/idempotency"
	"github.com/vladislavdragonenkov/webshop/internal/service/order"
	"github.com/vladislavdragonenkov/webshop/internal/service/profile"
	"github.com/vladislavdragonenkov/webshop/internal/version"
)

const (
	shutdownTimeout    = 5 * time.Second
	healthSyncInterval = 5 * time.Second
	outboxMaxAge       = 5 * time.Minute
)

// Run поднимает gRPC API, HTTP метрики/health и фоновые воркеры и ждёт отмены ctx.
// После штатной остановки возвращает ctx.Err().
func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")

	deps, err := initRuntimeDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := deps.closeFn(); err != nil {
			logger.WithError(err).Warn("failed to close storage")
		}
	}()

	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	if cfg.FixtureDataset != "" {
		if err := fixtures.NewReloader(deps.storage, hasher).ReloadFixtures(ctx, cfg.FixtureDataset); err != nil {
			return err
		}
		logger.WithField("dataset", cfg.FixtureDataset).Info("fixtures loaded")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	serviceMetrics := metrics.NewServiceMetricsWithRegisterer(registry)

	events := newDelivery(cfg, deps.outbox, registry, logger.WithField("component", "kafka"))
	defer events.close()

	grpcMetrics := promgrpc.NewServerMetrics()
	registry.MustRegister(grpcMetrics)

	grpcServer := newGRPCServer(cfg, deps, hasher, serviceMetrics, grpcMetrics)
	healthServer := grpchealth.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	grpcMetrics.InitializeMetrics(grpcServer)

	healthHandler := health.NewHandler(version.GetVersion())
	healthHandler.RegisterChecker("storage", health.NewStorageChecker(deps.storage))
	healthHandler.RegisterChecker("outbox", health.NewOutboxChecker(deps.outbox, cfg.OutboxMaxPending, outboxMaxAge))

	grpcListener, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}
	metricsListener, err := net.Listen("tcp", cfg.MetricsAddr)
	if err != nil {
		_ = grpcListener.Close()
		return fmt.Errorf("listen metrics: %w", err)
	}
	httpServer := &http.Server{
		Handler:           newHTTPMux(registry, healthHandler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.WithField("addr", grpcListener.Addr().String()).Info("grpc server listening")
		return grpcServer.Serve(grpcListener)
	})
	g.Go(func() error {
		logger.WithField("addr", metricsListener.Addr().String()).Info("metrics and health endpoints listening")
		if err := httpServer.Serve(metricsListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		healthHandler.SyncGRPC(gctx, healthServer, healthSyncInterval,
			webshopv1.ProfileService_ServiceDesc.ServiceName, webshopv1.OrderService_ServiceDesc.ServiceName, webshopv1.CatalogService_ServiceDesc.ServiceName)
		return nil
	})
	if events.worker != nil {
		g.Go(func() error {
			events.worker.Run(gctx)
			return nil
		})
	}
	cleanup := idempotency.NewCleanupWorker(deps.idempotency,
		idempotency.WithInterval(cfg.IdempotencyCleanupInterval),
		idempotency.WithBatchSize(cfg.IdempotencyCleanupBatchSize),
		idempotency.WithMetrics(metrics.NewCleanupMetrics(registry)),
		idempotency.WithLogger(logger.WithField("component", "idempotency-cleanup")),
	)
	g.Go(func() error {
		cleanup.Run(gctx)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		stopGRPC(grpcServer, logger)
		shutdownHTTP(httpServer, logger)
		return nil
	})

	err = g.Wait()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(err, grpc.ErrServerStopped) {
		return nil
	}
	return err
}

func newGRPCServer(cfg Config, deps *runtimeDependencies, hasher auth.PasswordHasher, serviceMetrics *metrics.ServiceMetrics, grpcMetrics *promgrpc.ServerMetrics) *grpc.Server {
	logger := log.WithField("component", "grpc")
	authenticator := auth.NewAuthenticator(deps.profiles, hasher, logger)

	server := grpc.NewServer(grpc.ChainUnaryInterceptor(
		grpcMetrics.UnaryServerInterceptor(),
		grpcsvc.UnaryAuthInterceptor(authenticator, logger.WithField("component", "grpc-auth"), "/"+healthpb.Health_ServiceDesc.ServiceName+"/"),
	))

	grpcsvc.Register(server, grpcsvc.Services{
		Profiles: profile.NewService(deps.profiles, deps.orders, hasher,
			profile.WithEvents(),
			profile.WithMetrics(serviceMetrics),
			profile.WithLogger(log.WithField("component", "profile-service")),
		),
		Orders: order.NewService(deps.orders, deps.profiles,
			order.WithTimeline(deps.timeline),
			order.WithEvents(),
			order.WithMetrics(serviceMetrics),
			order.WithLogger(log.WithField("component", "order-service")),
		),
		Catalog: catalog.NewService(deps.catalog,
			catalog.WithMetrics(serviceMetrics),
			catalog.WithLogger(log.WithField("component", "catalog-service")),
		),
		Idempotency: grpcsvc.NewIdempotency(deps.idempotency, cfg.IdempotencyTTL, logger.WithField("component", "grpc-idempotency")),
		Logger:      logger,
	})
	return server
}

// newHTTPMux собирает /metrics, /healthz, /readyz и /livez.
func newHTTPMux(registry *prometheus.Registry, healthHandler *health.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
	mux.Handle("/healthz", healthHandler)
	mux.HandleFunc("/readyz", healthHandler.ReadinessHandler)
	mux.HandleFunc("/livez", health.LivenessHandler)
	return mux
}

func stopGRPC(server *grpc.Server, logger *log.Entry) {
	stopped := make(chan struct{})
	go func() {
		server.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(shutdownTimeout):
		logger.Warn("graceful stop timed out, forcing grpc server to stop")
		server.Stop()
	}
}

func shutdownHTTP(srv *http.Server, logger *log.Entry) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("metrics server shutdown with error")
	}
}
