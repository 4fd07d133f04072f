// Package fileapi собирает зависимости File API и управляет жизненным циклом HTTP-сервера.
package fileapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/ogd-file-api/internal/catalog"
	"github.com/magabrotheeeer/ogd-file-api/internal/config"
	"github.com/magabrotheeeer/ogd-file-api/internal/datafile"
	"github.com/magabrotheeeer/ogd-file-api/internal/http/params"
	"github.com/magabrotheeeer/ogd-file-api/internal/indexprovider"
	"github.com/magabrotheeeer/ogd-file-api/internal/metrics"
	"github.com/magabrotheeeer/ogd-file-api/internal/models"
	"github.com/magabrotheeeer/ogd-file-api/internal/services/datasets"
	"github.com/magabrotheeeer/ogd-file-api/internal/usage"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	server *http.Server
	logger *slog.Logger
}

// New собирает приложение. Сеть на этом шаге не используется:
// индекс запрашивается на каждый запрос, клиенты BigQuery создаются по требованию.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	m := metrics.New()

	router := chi.NewRouter()
	RegisterRoutes(router, logger, Deps{
		Datasets:  NewDatasetService(cfg, logger, m),
		Usage:     usage.NewService(cfg.BigQueryGameMapping, nil, logger),
		Sanitizer: params.New(time.Now),
		Metrics:   m,
		Version:   cfg.APIVersion,
		RateLimit: cfg.RateLimit,
		CORS:      cfg.CORS,
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
	}, nil
}

// NewDatasetService сервис датасетов поверх HTTP-индекса из конфига.
// m может быть nil, тогда метрики не собираются.
func NewDatasetService(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) *datasets.Service {
	fallback := models.IndexConfig{
		FilesBase:     cfg.FileIndex.FilesBaseFallback,
		TemplatesBase: cfg.FileIndex.TemplatesBaseFallback,
	}

	var observer catalog.Observer
	var recorder indexprovider.Recorder
	if m != nil {
		observer = m
		recorder = m
	}

	index := indexprovider.NewClient(indexprovider.Config{
		URL:      cfg.FileIndex.URL,
		Timeout:  cfg.FileIndex.Timeout,
		Parser:   catalog.New(logger, fallback, observer),
		Recorder: recorder,
	})

	return datasets.NewService(index, datafile.NewReader(nil, 0), datasets.Links{
		CodespacesBase: cfg.Links.CodespacesBase,
		GithubBase:     cfg.Links.GithubBase,
	}, logger)
}

// Handler корневой обработчик сервера.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}
