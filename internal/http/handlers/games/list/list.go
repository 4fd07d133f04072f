// Package list реализует HTTP-обработчик списка игр из индекса.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/ogd-file-api/internal/http/handlers/apierror"
	"github.com/magabrotheeeer/ogd-file-api/internal/http/response"
	"github.com/magabrotheeeer/ogd-file-api/internal/models"
)

// Handler обрабатывает запросы списка игр.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает бизнес-логику получения списка игр.
type Service interface {
	GameIDs(ctx context.Context) ([]string, error)
}

// GameList данные ответа.
type GameList struct {
	GameIDs []string `json:"game_ids"`
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP возвращает идентификаторы игр в порядке индекса.
//
// @Summary Список игр
// @Description Возвращает идентификаторы всех игр, перечисленных в индексе файлов.
// @Tags Games
// @Produce  json
// @Success 200 {object} response.Response{data=GameList}
// @Failure 500 {object} response.ErrorResponse "Индекс недоступен или пуст"
// @Router /games [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.games.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ids, err := h.service.GameIDs(r.Context())
	if err != nil {
		apierror.Write(w, r, log, err, models.RequestParams{})
		return
	}

	log.Debug("retrieved game list", slog.Int("games", len(ids)))
	render.JSON(w, r, response.OK("Retrieved game list", GameList{GameIDs: ids}))
}
