package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/magabrotheeeer/ogd-file-api/internal/app/fileapi"
	"github.com/magabrotheeeer/ogd-file-api/internal/cli"
	"github.com/magabrotheeeer/ogd-file-api/internal/config"
	"github.com/magabrotheeeer/ogd-file-api/internal/lib/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(load)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func load(configPath string) (cli.Service, error) {
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	if configPath == "" {
		return nil, errors.New("config path is not set, use --config or CONFIG_PATH")
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	// Журнал уходит в stderr, чтобы не смешиваться с выводом команд.
	log := logger.NewWithWriter(os.Stderr, cfg.Env, cfg.LogLevel)
	return fileapi.NewDatasetService(cfg, log, nil), nil
}
