// Package params приводит параметры запроса к models.RequestParams.
// Некорректные год и месяц не отклоняются, а заменяются последним завершённым месяцем.
package params

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/ogd-file-api/internal/lib/month"
	"github.com/magabrotheeeer/ogd-file-api/internal/models"
)

// MinYear самый ранний год, за который могут быть данные.
const MinYear = 2000

var gameIDRe = regexp.MustCompile(`^[A-Za-z_]+$`)

// Sanitizer очищает параметры относительно текущего времени.
type Sanitizer struct {
	now      func() time.Time
	validate *validator.Validate
}

// New создаёт Sanitizer. Если now равен nil, используется time.Now.
func New(now func() time.Time) *Sanitizer {
	if now == nil {
		now = time.Now
	}
	v := validator.New()
	if err := v.RegisterValidation("game_id", func(fl validator.FieldLevel) bool {
		return gameIDRe.MatchString(fl.Field().String())
	}); err != nil {
		panic("params: register game_id validation: " + err.Error())
	}
	return &Sanitizer{now: now, validate: v}
}

// SanitizeGameID возвращает идентификатор в верхнем регистре
// или пустую строку, если в нём есть что-то кроме букв и подчёркивания.
func (s *Sanitizer) SanitizeGameID(raw string) string {
	if err := s.validate.Var(raw, "required,game_id"); err != nil {
		return ""
	}
	return strings.ToUpper(raw)
}

// Sanitize собирает RequestParams из сырых строк.
func (s *Sanitizer) Sanitize(gameID, year, mon string) models.RequestParams {
	now := s.now()
	defYear, defMonth := month.LastCompleted(now)

	return models.RequestParams{
		GameID: s.SanitizeGameID(gameID),
		Year:   s.intInRange(year, MinYear, now.Year(), defYear),
		Month:  s.intInRange(mon, 1, 12, defMonth),
	}
}

// FromQuery читает game_id, year и month из query string.
func (s *Sanitizer) FromQuery(r *http.Request) models.RequestParams {
	q := r.URL.Query()
	return s.Sanitize(q.Get("game_id"), q.Get("year"), q.Get("month"))
}

// FromPath читает game_id, year и month из параметров маршрута chi.
func (s *Sanitizer) FromPath(r *http.Request) models.RequestParams {
	return s.Sanitize(chi.URLParam(r, "game_id"), chi.URLParam(r, "year"), chi.URLParam(r, "month"))
}

func (s *Sanitizer) intInRange(raw string, lo, hi, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	if err := s.validate.Var(n, "min="+strconv.Itoa(lo)+",max="+strconv.Itoa(hi)); err != nil {
		return def
	}
	return n
}

// RawQueryGameID исходное значение game_id из query string.
func RawQueryGameID(r *http.Request) string {
	return r.URL.Query().Get("game_id")
}

// RawPathGameID исходное значение game_id из пути.
func RawPathGameID(r *http.Request) string {
	return chi.URLParam(r, "game_id")
}
