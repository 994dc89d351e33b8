package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/markasai/site-content/pkg/sitecontent/api"
	"github.com/markasai/site-content/pkg/sitecontent/config"
	"github.com/markasai/site-content/pkg/sitecontent/mediasync"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load(config.WithEnv(""))
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	repos, lister, err := cfg.BuildRepositories()
	if err != nil {
		slog.Error("failed to build repositories", "error", err)
		os.Exit(1)
	}

	var syncer *mediasync.Syncer
	if lister != nil {
		syncer = mediasync.New(repos.Media, lister)
	}

	router := api.NewRouter(repos, syncer)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "storage", cfg.Storage.Type, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exiting")
}
