package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpLayer "paycheck-agent/http"
	"paycheck-agent/logger"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the paycheck HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	cfg, svc, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	var limiter httpLayer.Limiter
	if cfg.RateLimit.RedisAddr != "" {
		redisLimiter := httpLayer.NewRedisRateLimiter(cfg.RateLimit.RedisAddr, cfg.RateLimit.Requests, cfg.RateLimit.Window, logger.Log)
		defer redisLimiter.Close()
		limiter = redisLimiter
	} else {
		memLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
		defer memLimiter.Stop()
		limiter = memLimiter
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpLayer.NewRouter(httpLayer.NewPaycheckHandler(svc), limiter, logger.Log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second + cfg.TaxEngine.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Log.Info("API listening", zap.String("addr", server.Addr), zap.String("stage", cfg.Stage))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Log.Error("Error starting server", zap.Error(err))
		return err
	case <-quit:
		logger.Log.Info("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Log.Error("Error during server shutdown", zap.Error(err))
		return err
	}

	logger.Log.Info("Server exited")
	return nil
}
