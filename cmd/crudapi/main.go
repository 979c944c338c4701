package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tempizhere/crudapi/internal/app"
	"github.com/tempizhere/crudapi/internal/config"
	crudgrpc "github.com/tempizhere/crudapi/internal/grpc"
	"github.com/tempizhere/crudapi/internal/log"
	"github.com/tempizhere/crudapi/internal/repository"
	"github.com/tempizhere/crudapi/internal/service"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Получаем конфигурацию
	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	logger, err := log.NewLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("Server stopped with error", zap.Error(err))
	}
	logger.Info("Server stopped")
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	db, err := repository.NewDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Warn("Failed to close database", zap.Error(closeErr))
		}
	}()
	logger.Info("Connected to database")

	gw := repository.NewPostgresGateway(db, logger)
	users := service.NewUsers(gw, logger)
	todos := service.NewTodos(gw, logger)

	appInstance := app.NewApp(users, todos, gw, logger, cfg.ExposeErrorDetails)
	srv := &http.Server{
		Addr:              cfg.RunAddr,
		Handler:           app.NewRouter(appInstance, logger, cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("Starting HTTP server", zap.String("address", cfg.RunAddr))
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- serveErr
		}
	}()

	var grpcServer *grpc.Server
	if cfg.GRPCAddr != "" {
		lis, listenErr := net.Listen("tcp", cfg.GRPCAddr)
		if listenErr != nil {
			_ = srv.Close()
			return listenErr
		}
		grpcServer = crudgrpc.NewGRPCServer(crudgrpc.NewServer(users, todos, gw, logger), logger)
		go func() {
			logger.Info("Starting gRPC server", zap.String("address", cfg.GRPCAddr))
			if serveErr := grpcServer.Serve(lis); serveErr != nil {
				errCh <- serveErr
			}
		}()
	}

	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
	case err = <-errCh:
		logger.Error("Server failed", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Warn("HTTP server shutdown failed", zap.Error(shutdownErr))
	}
	return err
}
