// Package apierror сопоставляет ошибки сервисов с HTTP-ответами.
package apierror

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/ogd-file-api/internal/http/response"
	"github.com/magabrotheeeer/ogd-file-api/internal/lib/sl"
	"github.com/magabrotheeeer/ogd-file-api/internal/models"
	"github.com/magabrotheeeer/ogd-file-api/internal/services/datasets"
	"github.com/magabrotheeeer/ogd-file-api/internal/usage"
)

// Resolve возвращает HTTP-код и сообщение для клиента.
// Всё, что не распознано, считается сбоем источника данных.
func Resolve(err error, p models.RequestParams) (int, string) {
	switch {
	case errors.Is(err, datasets.ErrEmptyCatalog):
		return http.StatusInternalServerError, "Game list not found, or had no datasets listed"
	case errors.Is(err, datasets.ErrGameNotFound), errors.Is(err, usage.ErrGameNotMapped):
		return http.StatusNotFound, fmt.Sprintf("GameID '%s' not found in available games", p.GameID)
	case errors.Is(err, datasets.ErrNoMatchingDataset):
		return http.StatusNotFound, fmt.Sprintf("No dataset for %s covers %s", p.GameID, p.MonthString())
	case errors.Is(err, datasets.ErrFileNotAvailable):
		return http.StatusNotFound, fmt.Sprintf("Requested file is not available for %s in %s", p.GameID, p.MonthString())
	case errors.Is(err, datasets.ErrUnsupportedFileType):
		return http.StatusNotImplemented, "Event files are not yet supported"
	case errors.Is(err, datasets.ErrUnknownFileType):
		return http.StatusBadRequest, "Unrecognized file type"
	default:
		return http.StatusInternalServerError, "Failed to retrieve data from upstream"
	}
}

// Write логирует ошибку и отправляет ответ с подходящим кодом.
// Ошибки уровня 5xx пишутся как Error, остальные как Info.
func Write(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, p models.RequestParams) {
	code, msg := Resolve(err, p)
	if code >= http.StatusInternalServerError {
		log.Error(msg, sl.Err(err))
	} else {
		log.Info(msg, sl.Err(err))
	}
	render.Status(r, code)
	render.JSON(w, r, response.Error(msg))
}

// BadGameID отвечает 400 на идентификатор игры, не прошедший проверку.
func BadGameID(w http.ResponseWriter, r *http.Request, log *slog.Logger, raw string) {
	msg := fmt.Sprintf("Bad GameID '%s'", raw)
	log.Info(msg)
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, response.Error(msg))
}
