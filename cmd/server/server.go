package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/petoverse-api/internal/app"
	"github.com/KirkDiggler/petoverse-api/internal/config"
	"github.com/KirkDiggler/petoverse-api/internal/errors"
	"github.com/KirkDiggler/petoverse-api/internal/logger"
	redisclient "github.com/KirkDiggler/petoverse-api/internal/redis"
)

var (
	configPath    string
	grpcPort      int
	redisEndpoint string
	logLevel      string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the Petoverse gRPC server with the auth, pet and world services.

Without --redis (or redis.endpoint in the config file) the server keeps its
state in an embedded in-memory store that is lost on exit.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides config)")
	serverCmd.Flags().StringVar(&redisEndpoint, "redis", "", "Redis host:port (overrides config)")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("port") {
		cfg.Server.Port = grpcPort
	}
	if cmd.Flags().Changed("redis") {
		cfg.Redis.Endpoint = redisEndpoint
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.Human,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	client, stopRedis, embedded, err := redisclient.Open(cfg.Redis.Endpoint, &redisclient.Options{
		PoolSize: cfg.Redis.PoolSize,
		UseTLS:   cfg.Redis.UseTLS,
	})
	if err != nil {
		return errors.Wrap(err, "failed to open redis")
	}
	defer stopRedis()

	if embedded {
		log.Warn("no redis endpoint configured, using embedded in-memory store")
	} else if err := client.Ping(ctx).Err(); err != nil {
		return errors.Wrapf(err, "failed to reach redis at %s", cfg.Redis.Endpoint)
	}

	stack, err := app.New(&app.Options{
		Config: cfg,
		Redis:  client,
		Logger: log,
	})
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		return errors.Wrap(err, "failed to listen")
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(log.GRPC()),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(log.GRPC()),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	stack.Register(srv)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	for _, name := range app.ServiceNames() {
		healthServer.SetServingStatus(name, grpc_health_v1.HealthCheckResponse_SERVING)
	}

	reflection.Register(srv)

	if stack.Thinker.Enabled() {
		go stack.Thinker.Run(ctx)
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info("gRPC server starting", "port", cfg.Server.Port)
		if err := srv.Serve(lis); err != nil {
			errChan <- errors.Wrap(err, "failed to serve")
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout(cfg))
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			log.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

func shutdownTimeout(cfg *config.Config) time.Duration {
	if cfg.Server.ShutdownTimeout <= 0 {
		return 30 * time.Second
	}
	return cfg.Server.ShutdownTimeout
}
