package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/user/playlist-checker/internal/api"
	"github.com/user/playlist-checker/internal/checker"
	"github.com/user/playlist-checker/internal/config"
	"github.com/user/playlist-checker/internal/domain"
	"github.com/user/playlist-checker/internal/monitoring"
	"github.com/user/playlist-checker/internal/playlist"
	"github.com/user/playlist-checker/internal/probe"
	"github.com/user/playlist-checker/internal/report"
)

func main() {
	// Initialize structured logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("could not load config", zap.Error(err))
	}

	// Initialize Monitoring
	metrics := monitoring.NewMetrics()

	// Initialize Core Checker
	prober := probe.NewProber(cfg, logger)
	core := checker.New(cfg, prober, report.NewZap(logger), metrics, logger)

	// The playlist is reloaded for every cycle so edits on disk are
	// picked up without restarting the daemon.
	load := func() ([]domain.StreamEntry, error) {
		f, err := os.Open(cfg.PlaylistPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return playlist.Parse(f)
	}

	runner := checker.NewRunner(core, load, time.Duration(cfg.CheckInterval)*time.Second, logger)
	runner.Start()

	// Initialize API Server
	server := api.NewServer(cfg, runner, metrics, logger)

	// Graceful Shutdown
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	logger.Info("server started", zap.String("port", cfg.ServerPort))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	runner.Stop()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exiting")
}
