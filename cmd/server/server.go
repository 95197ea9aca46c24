package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/sim-catalog/internal/catalog"
	"github.com/KirkDiggler/sim-catalog/internal/config"
	"github.com/KirkDiggler/sim-catalog/internal/handlers/catalog/v1alpha1"
	"github.com/KirkDiggler/sim-catalog/internal/logger"
	"github.com/KirkDiggler/sim-catalog/internal/metrics"
	"github.com/KirkDiggler/sim-catalog/internal/orchestrators/lookup"
	"github.com/KirkDiggler/sim-catalog/internal/redis"
	"github.com/KirkDiggler/sim-catalog/internal/repositories/snapshots"
	"github.com/KirkDiggler/sim-catalog/internal/snapshot"
)

var (
	configPath string
	grpcPort   int
	httpPort   int
	source     string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the catalog gRPC server and the metrics/health HTTP listener.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	serverCmd.Flags().IntVar(&grpcPort, "port", config.DefaultGRPCPort, "gRPC server port")
	serverCmd.Flags().IntVar(&httpPort, "http-port", config.DefaultHTTPPort, "Metrics and health port")
	serverCmd.Flags().StringVar(&source, "source", "", "Snapshot URL or path")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.GRPCPort = grpcPort
	}
	if cmd.Flags().Changed("http-port") {
		cfg.Server.HTTPPort = httpPort
	}
	if cmd.Flags().Changed("source") {
		cfg.Snapshot.Source = source
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger.Init(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		ServiceName: logger.DefaultServiceName,
		Version:     version,
		AddSource:   cfg.Log.AddSource,
	}, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := buildSource(cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	var opts []catalog.Option
	if cfg.Snapshot.StrictIDs {
		opts = append(opts, catalog.WithStrictIDs())
	}

	loader, err := catalog.NewLoader(&catalog.LoaderConfig{
		Source:   repo,
		Encoding: snapshot.Encoding(cfg.Snapshot.Encoding),
		Timeout:  cfg.Snapshot.LoadTimeout,
		Options:  opts,
	})
	if err != nil {
		return fmt.Errorf("failed to create catalog loader: %w", err)
	}

	lookupService, err := lookup.NewOrchestrator(&lookup.Config{Catalogs: loader})
	if err != nil {
		return fmt.Errorf("failed to create lookup orchestrator: %w", err)
	}

	catalogHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		LookupService: lookupService,
	})
	if err != nil {
		return fmt.Errorf("failed to create catalog handler: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logger.RequestIDInterceptor(),
			grpc_logging.UnaryServerInterceptor(logger.InterceptorLogger()),
			metrics.UnaryServerInterceptor(),
			grpc_recovery.UnaryServerInterceptor(),
		),
	)
	v1alpha1.RegisterCatalogServiceServer(srv, catalogHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	reflection.Register(srv)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	opsServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:           newOpsRouter(loader),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("gRPC server starting", "port", cfg.Server.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		slog.Info("Ops server starting", "port", cfg.Server.HTTPPort)
		if err := opsServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve ops: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		trackReadiness(gctx, loader, healthServer, cfg.Snapshot.Preload)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down servers...")
		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := opsServer.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Ops server shutdown failed", "error", err)
		}

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}
		return nil
	})

	return g.Wait()
}

// trackReadiness flips gRPC health to SERVING once the catalog has loaded.
// With preload the load starts now; otherwise the first request starts it.
func trackReadiness(ctx context.Context, loader *catalog.Loader, healthServer *health.Server, preload bool) {
	if preload {
		if _, err := loader.Initialize(ctx); err != nil {
			slog.Error("Catalog preload failed", "error", err)
		}
	}

	select {
	case <-ctx.Done():
		return
	case <-loader.Done():
	}

	if !loader.Ready() {
		return
	}
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
}

// buildSource picks the snapshot repository for the configured source and
// wraps it in the redis cache when endpoints are configured
func buildSource(cfg *config.Config) (snapshots.Repository, func(), error) {
	var (
		repo snapshots.Repository
		err  error
	)

	src := cfg.Snapshot.Source
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		repo, err = snapshots.NewHTTP(&snapshots.HTTPConfig{
			URL:      src,
			MaxBytes: cfg.Snapshot.MaxBytes,
		})
	} else {
		repo, err = snapshots.NewFile(&snapshots.FileConfig{Path: src})
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create snapshot source: %w", err)
	}

	if !cfg.Redis.Enabled() {
		return repo, func() {}, nil
	}

	client, err := redis.Connect(cfg.Redis.Endpoints, &redis.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		UseTLS:   cfg.Redis.UseTLS,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	cached, err := snapshots.NewRedisCache(&snapshots.RedisCacheConfig{
		Client:    client,
		Upstream:  repo,
		KeyPrefix: cfg.Redis.KeyPrefix,
		TTL:       cfg.Redis.TTL,
	})
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to create snapshot cache: %w", err)
	}

	slog.Info("Snapshot cache enabled", "endpoints", cfg.Redis.Endpoints, "ttl", cfg.Redis.TTL.String())
	return cached, func() { _ = client.Close() }, nil
}
