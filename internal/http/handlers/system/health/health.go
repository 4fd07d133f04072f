// Package health проверка живости сервиса.
package health

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/ogd-file-api/internal/http/response"
)

type Handler struct{}

func New() *Handler {
	return &Handler{}
}

// ServeHTTP всегда отвечает 200, индекс не запрашивается.
//
// @Summary Проверка живости
// @Tags System
// @Produce  json
// @Success 200 {object} response.Response
// @Router /health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.OK("ok", map[string]any{
		"status": "ok",
	}))
}
