// Package file реализует HTTP-обработчик, отдающий содержимое файла датасета
// в виде таблицы {columns, rows}.
package file

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/ogd-file-api/internal/datafile"
	"github.com/magabrotheeeer/ogd-file-api/internal/http/handlers/apierror"
	"github.com/magabrotheeeer/ogd-file-api/internal/http/params"
	"github.com/magabrotheeeer/ogd-file-api/internal/http/response"
	"github.com/magabrotheeeer/ogd-file-api/internal/lib/sl"
	"github.com/magabrotheeeer/ogd-file-api/internal/models"
)

// Handler обрабатывает запросы содержимого файла.
type Handler struct {
	log      *slog.Logger
	service  Service
	sanitize *params.Sanitizer
}

// Service описывает бизнес-логику чтения файла датасета.
type Service interface {
	DatasetFile(ctx context.Context, params models.RequestParams, fileType string) (*datafile.Table, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service, sanitize *params.Sanitizer) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		sanitize: sanitize,
	}
}

// ServeHTTP возвращает таблицу из первого .tsv внутри архива датасета.
//
// @Summary Содержимое файла датасета
// @Description Скачивает архив нужного типа у датасета, покрывающего месяц, и возвращает его таблицу.
// @Tags Games
// @Produce  json
// @Param game_id path string true "Идентификатор игры"
// @Param year path int true "Год"
// @Param month path int true "Месяц"
// @Param file_type path string true "Тип файла" Enums(SESSION, PLAYER, POPULATION, EVENT)
// @Success 200 {object} response.Response{data=datafile.Table}
// @Failure 400 {object} response.ErrorResponse "Некорректный идентификатор игры или тип файла"
// @Failure 404 {object} response.ErrorResponse "Датасет или файл не найдены"
// @Failure 501 {object} response.ErrorResponse "Файлы событий не поддерживаются"
// @Failure 500 {object} response.ErrorResponse "Источник данных недоступен"
// @Router /games/{game_id}/datasets/{year}/{month}/{file_type} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.games.file"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	p := h.sanitize.FromPath(r)
	if !p.HasGame() {
		apierror.BadGameID(w, r, log, params.RawPathGameID(r))
		return
	}
	fileType := chi.URLParam(r, "file_type")

	table, err := h.service.DatasetFile(r.Context(), p, fileType)
	if err != nil {
		apierror.Write(w, r, log, err, p)
		return
	}

	log.Info("retrieved dataset file", sl.Game(p.GameID), sl.Month(p.Year, p.Month),
		slog.String("file_type", fileType), slog.Int("rows", len(table.Rows)))
	render.JSON(w, r, response.OK("Retrieved dataset file", table))
}
