// Package monthlyusage реализует старый маршрут /getMonthlyGameUsage:
// число сессий игры по месяцам без ссылок на файлы.
package monthlyusage

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/ogd-file-api/internal/http/handlers/apierror"
	"github.com/magabrotheeeer/ogd-file-api/internal/http/params"
	"github.com/magabrotheeeer/ogd-file-api/internal/http/response"
	"github.com/magabrotheeeer/ogd-file-api/internal/models"
	"github.com/magabrotheeeer/ogd-file-api/internal/services/datasets"
)

// Handler обрабатывает запросы помесячной статистики.
type Handler struct {
	log      *slog.Logger
	service  Service
	sanitize *params.Sanitizer
}

// Service описывает бизнес-логику построения ряда.
type Service interface {
	MonthlyUsage(ctx context.Context, gameID string) (*datasets.Usage, error)
}

// MonthSessions одна строка ответа.
type MonthSessions struct {
	Year          int `json:"year"`
	Month         int `json:"month"`
	TotalSessions int `json:"total_sessions"`
}

// GameSessions данные ответа.
type GameSessions struct {
	GameID   string          `json:"game_id"`
	Sessions []MonthSessions `json:"sessions"`
}

// New создает новый Handler.
func New(log *slog.Logger, service Service, sanitize *params.Sanitizer) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		sanitize: sanitize,
	}
}

// ServeHTTP возвращает число сессий игры по месяцам.
//
// @Summary Сессии игры по месяцам
// @Tags Legacy
// @Produce  json
// @Param game_id query string true "Идентификатор игры"
// @Success 200 {object} response.Response{data=GameSessions}
// @Failure 400 {object} response.ErrorResponse "Некорректный идентификатор игры"
// @Failure 404 {object} response.ErrorResponse "Игра не найдена"
// @Failure 500 {object} response.ErrorResponse "Индекс недоступен"
// @Router /getMonthlyGameUsage [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.legacy.monthlyusage"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	raw := params.RawQueryGameID(r)
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

	sessions := make([]MonthSessions, 0, len(usage.Months))
	for _, m := range usage.Months {
		sessions = append(sessions, MonthSessions{Year: m.Year, Month: m.Month, TotalSessions: m.TotalSessions})
	}
	render.JSON(w, r, response.OK("Retrieved monthly game usage", GameSessions{
		GameID:   usage.GameID,
		Sessions: sessions,
	}))
}
