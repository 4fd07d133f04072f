// Package series реализует HTTP-обработчик помесячного ряда датасетов игры.
//
// Ряд непрерывный: месяцы без датасета присутствуют с нулём сессий и пустыми ссылками.
package series

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/ogd-file-api/internal/http/handlers/apierror"
	"github.com/magabrotheeeer/ogd-file-api/internal/http/params"
	"github.com/magabrotheeeer/ogd-file-api/internal/http/response"
	"github.com/magabrotheeeer/ogd-file-api/internal/lib/sl"
	"github.com/magabrotheeeer/ogd-file-api/internal/models"
	"github.com/magabrotheeeer/ogd-file-api/internal/services/datasets"
)

// Handler обрабатывает запросы ряда датасетов.
type Handler struct {
	log      *slog.Logger
	service  Service
	sanitize *params.Sanitizer
}

// Service описывает бизнес-логику построения ряда.
type Service interface {
	MonthlyUsage(ctx context.Context, gameID string) (*datasets.Usage, error)
}

// GameDatasets данные ответа.
type GameDatasets struct {
	GameID   string                   `json:"game_id"`
	Datasets []datasets.MonthDatasets `json:"datasets"`
}

// New создает новый Handler.
func New(log *slog.Logger, service Service, sanitize *params.Sanitizer) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		sanitize: sanitize,
	}
}

// ServeHTTP возвращает помесячный ряд датасетов игры.
//
// @Summary Датасеты игры по месяцам
// @Description Непрерывный ряд от первого до последнего месяца с датасетом, с числом сессий и ссылками на файлы.
// @Tags Games
// @Produce  json
// @Param game_id path string true "Идентификатор игры"
// @Success 200 {object} response.Response{data=GameDatasets}
// @Failure 400 {object} response.ErrorResponse "Некорректный идентификатор игры"
// @Failure 404 {object} response.ErrorResponse "Игра не найдена"
// @Failure 500 {object} response.ErrorResponse "Индекс недоступен"
// @Router /games/{game_id}/datasets [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.games.series"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	raw := chi.URLParam(r, "game_id")
	gameID := h.sanitize.SanitizeGameID(raw)
	if gameID == "" {
		apierror.BadGameID(w, r, log, raw)
		return
	}

	usage, err := h.service.MonthlyUsage(r.Context(), gameID)
	if err != nil {
		apierror.Write(w, r, log, err, models.RequestParams{GameID: gameID})
		return
	}

	log.Debug("retrieved game datasets", sl.Game(gameID), slog.Int("months", len(usage.Months)))
	render.JSON(w, r, response.OK("Retrieved game datasets", GameDatasets{
		GameID:   usage.GameID,
		Datasets: usage.Months,
	}))
}
