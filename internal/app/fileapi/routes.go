package fileapi

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/magabrotheeeer/ogd-file-api/docs"
	"github.com/magabrotheeeer/ogd-file-api/internal/config"
	"github.com/magabrotheeeer/ogd-file-api/internal/http/handlers/games/file"
	"github.com/magabrotheeeer/ogd-file-api/internal/http/handlers/games/info"
	"github.com/magabrotheeeer/ogd-file-api/internal/http/handlers/games/list"
	"github.com/magabrotheeeer/ogd-file-api/internal/http/handlers/games/series"
	"github.com/magabrotheeeer/ogd-file-api/internal/http/handlers/legacy/monthlyusage"
	"github.com/magabrotheeeer/ogd-file-api/internal/http/handlers/legacy/usagebymonth"
	"github.com/magabrotheeeer/ogd-file-api/internal/http/handlers/system/health"
	"github.com/magabrotheeeer/ogd-file-api/internal/http/handlers/system/hello"
	"github.com/magabrotheeeer/ogd-file-api/internal/http/handlers/system/version"
	"github.com/magabrotheeeer/ogd-file-api/internal/http/middlewarectx"
	"github.com/magabrotheeeer/ogd-file-api/internal/http/params"
	"github.com/magabrotheeeer/ogd-file-api/internal/metrics"
	"github.com/magabrotheeeer/ogd-file-api/internal/services/datasets"
	"github.com/magabrotheeeer/ogd-file-api/internal/usage"
)

// Deps зависимости маршрутов.
type Deps struct {
	Datasets  *datasets.Service
	Usage     *usage.Service
	Sanitizer *params.Sanitizer
	Metrics   *metrics.Metrics
	Version   string
	RateLimit config.RateLimit
	CORS      config.CORS
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, d Deps) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middlewarectx.RequestLogger(logger),
		middleware.Recoverer,
		middlewarectx.CORS(d.CORS.AllowedOrigins),
		middlewarectx.Metrics(d.Metrics),
	)

	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, d.RateLimit.RPS, d.RateLimit.Burst))

		r.Get("/games", list.New(logger, d.Datasets).ServeHTTP)
		r.Get("/games/{game_id}/datasets", series.New(logger, d.Datasets, d.Sanitizer).ServeHTTP)
		r.Get("/games/{game_id}/datasets/{year}/{month}", info.New(logger, d.Datasets, d.Sanitizer).ServeHTTP)
		r.Get("/games/{game_id}/datasets/{year}/{month}/{file_type}", file.New(logger, d.Datasets, d.Sanitizer).ServeHTTP)

		// Старые маршруты с параметрами в query string
		r.Get("/getGameUsageByMonth", usagebymonth.New(logger, d.Usage, d.Sanitizer).ServeHTTP)
		r.Get("/getMonthlyGameUsage", monthlyusage.New(logger, d.Datasets, d.Sanitizer).ServeHTTP)
		r.Get("/getGameFileInfoByMonth", info.NewFromQuery(logger, d.Datasets, d.Sanitizer).ServeHTTP)
	})

	r.Get("/", hello.New().ServeHTTP)
	r.Get("/version", version.New(d.Version).ServeHTTP)
	r.Get("/health", health.New().ServeHTTP)

	r.Handle("/metrics", d.Metrics.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
