// Package main OpenGameData File API
//
// @title           OpenGameData File API
// @version         1.0
// @description     Read-only API over the OpenGameData dataset index

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/magabrotheeeer/ogd-file-api/internal/app/fileapi"
	"github.com/magabrotheeeer/ogd-file-api/internal/config"
	"github.com/magabrotheeeer/ogd-file-api/internal/lib/logger"
	"github.com/magabrotheeeer/ogd-file-api/internal/lib/sl"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env, cfg.LogLevel, cfg.LogFile)

	log.Info("starting file-api", slog.String("env", cfg.Env), slog.String("version", cfg.APIVersion))
	log.Debug("debug messages are enabled")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := fileapi.New(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize app", sl.Err(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("app stopped with error", sl.Err(err))
		os.Exit(1)
	}

	log.Info("file-api stopped gracefully")
}
