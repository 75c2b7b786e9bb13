package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/imposterparty/imposterparty/internal/api"
	"github.com/imposterparty/imposterparty/internal/factory"
	redisstorage "github.com/imposterparty/imposterparty/internal/storage/redis"
)

func main() {
	cfg := &serverConfig{}
	if err := newServerCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *serverConfig) error {
	// Set up logging with JSON output
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	// Build factory config
	factoryCfg := factory.Config{
		Logger:        logger,
		StorageType:   cfg.storageType,
		OpenAIAPIKey:  cfg.openAIAPIKey,
		OpenAIBaseURL: cfg.openAIBaseURL,
	}

	if cfg.storageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.redisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		return err
	}

	if app.WordClient == nil {
		logger.Info("no generation provider configured, word endpoint accepts manual source only")
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		RosterController:  app.RosterController,
		SessionController: app.SessionController,
		WordClient:        app.WordClient,
		HubManager:        app.HubManager,
		ShareBaseURL:      cfg.shareBaseURL,
	})

	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.host
	serverConfig.Port = cfg.port
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			return err
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			return err
		}
	}

	logger.Info("server stopped")
	return nil
}
