// Package version отдаёт версию API из конфига.
package version

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/ogd-file-api/internal/http/response"
)

// Handler обрабатывает запрос версии.
type Handler struct {
	version string
}

// Version данные ответа.
type Version struct {
	Version string `json:"version"`
}

// New создает новый Handler.
func New(version string) *Handler {
	return &Handler{version: version}
}

// ServeHTTP возвращает версию API.
//
// @Summary Версия API
// @Tags System
// @Produce  json
// @Success 200 {object} response.Response{data=Version}
// @Router /version [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.OK("Retrieved API version", Version{Version: h.version}))
}
