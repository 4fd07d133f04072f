// Package info реализует HTTP-обработчик описания датасета за месяц:
// диапазон, ссылки на файлы и шаблоны, codespaces, детекторы и фичи.
//
// Один и тот же Handler обслуживает REST-маршрут с параметрами в пути
// и старый маршрут /getGameFileInfoByMonth с параметрами в query string.
package info

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
	"github.com/magabrotheeeer/ogd-file-api/internal/services/datasets"
)

// Handler обрабатывает запросы описания датасета.
type Handler struct {
	log     *slog.Logger
	service Service
	extract func(*http.Request) models.RequestParams
	rawGame func(*http.Request) string
}

// Service описывает бизнес-логику поиска датасета.
type Service interface {
	FileInfo(ctx context.Context, params models.RequestParams) (*datasets.FileInfo, error)
}

// New создает Handler, читающий параметры из пути.
func New(log *slog.Logger, service Service, sanitize *params.Sanitizer) *Handler {
	return &Handler{
		log:     log,
		service: service,
		extract: sanitize.FromPath,
		rawGame: params.RawPathGameID,
	}
}

// NewFromQuery создает Handler, читающий параметры из query string.
func NewFromQuery(log *slog.Logger, service Service, sanitize *params.Sanitizer) *Handler {
	return &Handler{
		log:     log,
		service: service,
		extract: sanitize.FromQuery,
		rawGame: params.RawQueryGameID,
	}
}

// ServeHTTP возвращает описание датасета, покрывающего месяц.
//
// @Summary Описание датасета за месяц
// @Description Находит датасет, диапазон которого содержит месяц, и возвращает ссылки на его файлы.
// @Description Некорректные год и месяц заменяются последним завершённым месяцем.
// @Tags Games
// @Produce  json
// @Param game_id path string true "Идентификатор игры"
// @Param year path int true "Год"
// @Param month path int true "Месяц"
// @Success 200 {object} response.Response{data=datasets.FileInfo}
// @Failure 400 {object} response.ErrorResponse "Некорректный идентификатор игры"
// @Failure 404 {object} response.ErrorResponse "Игра или датасет не найдены"
// @Failure 500 {object} response.ErrorResponse "Индекс недоступен"
// @Router /games/{game_id}/datasets/{year}/{month} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.games.info"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	p := h.extract(r)
	if !p.HasGame() {
		apierror.BadGameID(w, r, log, h.rawGame(r))
		return
	}

	info, err := h.service.FileInfo(r.Context(), p)
	if err != nil {
		apierror.Write(w, r, log, err, p)
		return
	}

	log.Debug("retrieved file info", sl.Game(p.GameID), sl.Month(p.Year, p.Month))
	render.JSON(w, r, response.OK("Retrieved game file info by month", info))
}
