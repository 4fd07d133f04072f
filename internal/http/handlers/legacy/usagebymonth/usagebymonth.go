// Package usagebymonth реализует старый маршрут /getGameUsageByMonth:
// живая статистика сессий за месяц из BigQuery.
package usagebymonth

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/ogd-file-api/internal/http/handlers/apierror"
	"github.com/magabrotheeeer/ogd-file-api/internal/http/params"
	"github.com/magabrotheeeer/ogd-file-api/internal/http/response"
	"github.com/magabrotheeeer/ogd-file-api/internal/lib/sl"
	"github.com/magabrotheeeer/ogd-file-api/internal/models"
	"github.com/magabrotheeeer/ogd-file-api/internal/usage"
)

// Handler обрабатывает запросы статистики за месяц.
type Handler struct {
	log      *slog.Logger
	service  Service
	sanitize *params.Sanitizer
}

// Service описывает источник живой статистики.
type Service interface {
	GameUsageByMonth(ctx context.Context, params models.RequestParams) (*usage.MonthUsage, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service, sanitize *params.Sanitizer) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		sanitize: sanitize,
	}
}

// ServeHTTP возвращает число сессий за месяц и по дням.
//
// @Summary Статистика игры за месяц
// @Description Считает уникальные сессии по событиям в BigQuery. Дни без событий равны нулю.
// @Tags Legacy
// @Produce  json
// @Param game_id query string true "Идентификатор игры"
// @Param year query int false "Год"
// @Param month query int false "Месяц"
// @Success 200 {object} response.Response{data=usage.MonthUsage}
// @Failure 400 {object} response.ErrorResponse "Некорректный идентификатор игры"
// @Failure 404 {object} response.ErrorResponse "Для игры не настроен BigQuery"
// @Failure 500 {object} response.ErrorResponse "Ошибка BigQuery"
// @Router /getGameUsageByMonth [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.legacy.usagebymonth"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	p := h.sanitize.FromQuery(r)
	if !p.HasGame() {
		apierror.BadGameID(w, r, log, params.RawQueryGameID(r))
		return
	}

	res, err := h.service.GameUsageByMonth(r.Context(), p)
	if err != nil {
		apierror.Write(w, r, log, err, p)
		return
	}

	log.Info("retrieved game usage", sl.Game(p.GameID), sl.Month(p.Year, p.Month),
		slog.Int64("total", res.TotalMonthlySessions))
	render.JSON(w, r, response.OK("Retrieved game usage by month", res))
}
