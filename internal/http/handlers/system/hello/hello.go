// Package hello отвечает на корневой маршрут.
package hello

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/ogd-file-api/internal/http/response"
)

// Handler приветствие сервиса.
type Handler struct{}

// New создает новый Handler.
func New() *Handler {
	return &Handler{}
}

// ServeHTTP возвращает приветствие.
//
// @Summary Приветствие
// @Tags System
// @Produce  json
// @Success 200 {object} response.Response
// @Router / [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.OK("Hello! You GET the OpenGameData File API", nil))
}
