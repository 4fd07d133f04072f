// Package catalog разбирает индекс файлов (file_list.json) в доменную модель.
//
// Индекс — это JSON-объект, где ключ CONFIG содержит базовые адреса, а все
// остальные ключи — идентификаторы игр. Каждая игра — объект из датасетов,
// ключ которого имеет вид GAMEID_YYYYMMDD_to_YYYYMMDD. Порядок игр и датасетов
// сохраняется таким, как в индексе.
//
// Разбор не падает на испорченных записях: датасет с неразборчивым ключом
// остаётся в каталоге с невалидным DateRangeKey, а игра, которая не является
// объектом, пропускается с записью в лог.
package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/magabrotheeeer/ogd-file-api/internal/lib/sl"
	"github.com/magabrotheeeer/ogd-file-api/internal/models"
)

const configKey = "CONFIG"

var dateLayouts = []string{"01/02/2006", "1/2/2006", "2006-01-02", "20060102"}

// Observer получает уведомления о пропущенных записях индекса.
type Observer interface {
	InvalidDataset(gameID string)
}

// Parser разбирает индекс. Нулевое значение непригодно, используйте New.
type Parser struct {
	log      *slog.Logger
	fallback models.IndexConfig
	observer Observer
}

// New создаёт Parser. fallback используется, если в CONFIG нет базовых адресов.
// observer может быть nil.
func New(log *slog.Logger, fallback models.IndexConfig, observer Observer) *Parser {
	return &Parser{
		log:      log,
		fallback: fallback,
		observer: observer,
	}
}

// Parse превращает тело file_list.json в каталог.
// Ошибка возвращается, только если документ целиком не является JSON-объектом.
func (p *Parser) Parse(data []byte) (*models.Catalog, error) {
	const op = "catalog.Parse"

	root := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, root); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cfg := p.fallback
	if raw, ok := root.Get(configKey); ok {
		cfg = p.parseConfig(raw)
	}

	c := models.NewCatalog(cfg)
	for pair := root.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key == configKey {
			continue
		}
		game, err := p.parseGame(pair.Key, pair.Value)
		if err != nil {
			p.log.Warn("skipping malformed game entry", sl.Game(pair.Key), sl.Err(err))
			continue
		}
		c.AddGame(game)
	}
	return c, nil
}

func (p *Parser) parseConfig(raw json.RawMessage) models.IndexConfig {
	cfg := p.fallback

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		p.log.Warn("CONFIG section is not an object, using fallback base urls", sl.Err(err))
		return cfg
	}

	if s := firstString(fields, "remote_url", "files_base"); s != "" {
		cfg.FilesBase = s
	}
	if s := firstString(fields, "templates_url", "templates_base"); s != "" {
		cfg.TemplatesBase = s
	}
	return cfg
}

func (p *Parser) parseGame(gameID string, raw json.RawMessage) (*models.GameDatasets, error) {
	entries := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(raw, entries); err != nil {
		return nil, err
	}

	game := &models.GameDatasets{
		GameID:   gameID,
		Datasets: make([]*models.Dataset, 0, entries.Len()),
	}
	for pair := entries.Oldest(); pair != nil; pair = pair.Next() {
		d := p.parseDataset(gameID, pair.Key, pair.Value)
		if !d.Key.IsValid() {
			p.log.Debug("dataset key is invalid, excluded from matching",
				sl.Game(gameID), sl.Dataset(pair.Key))
			if p.observer != nil {
				p.observer.InvalidDataset(gameID)
			}
		}
		game.Datasets = append(game.Datasets, d)
	}
	return game, nil
}

func (p *Parser) parseDataset(gameID, datasetID string, raw json.RawMessage) *models.Dataset {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		fields = map[string]any{}
	}

	d := &models.Dataset{
		ID:          datasetID,
		RevisionTag: models.Unknown,
	}

	_, hasStart := fields["start_date"]
	_, hasEnd := fields["end_date"]
	if hasStart && hasEnd {
		d.Key = KeyFromDates(fields["start_date"], fields["end_date"])
	} else {
		d.Key = KeyFromID(gameID, datasetID)
	}

	if v, ok := fields["date_modified"]; ok {
		if t, ok := parseDate(v); ok {
			d.DateModified = t
		}
	}
	if v, ok := fields["ogd_revision"]; ok && v != nil {
		if s := cast.ToString(v); s != "" {
			d.RevisionTag = s
		}
	}
	d.SessionCount = p.optionalInt(gameID, datasetID, fields, "sessions")
	d.PlayerCount = p.optionalInt(gameID, datasetID, fields, "players")

	d.Files = models.Files{
		Raw:        optionalString(fields, "raw_file"),
		Events:     optionalString(fields, "events_file"),
		Sessions:   optionalString(fields, "sessions_file"),
		Players:    optionalString(fields, "players_file"),
		Population: optionalString(fields, "population_file"),
	}
	d.Templates = models.Templates{
		Events:     optionalString(fields, "events_template"),
		Sessions:   optionalString(fields, "sessions_template"),
		Players:    optionalString(fields, "players_template"),
		Population: optionalString(fields, "population_template"),
	}
	return d
}

func (p *Parser) optionalInt(gameID, datasetID string, fields map[string]any, key string) *int {
	v, ok := fields[key]
	if !ok || v == nil {
		return nil
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		p.log.Debug("dataset count is not an integer", sl.Game(gameID), sl.Dataset(datasetID),
			slog.String("field", key), sl.Err(err))
		return nil
	}
	return &n
}

// KeyFromID разбирает ключ вида GAMEID_YYYYMMDD_to_YYYYMMDD.
// После отрезания идентификатора игры строка делится по "_" и должна дать
// ровно четыре части, где первая и третья — даты YYYYMMDD.
// День из ключа не используется и не проверяется.
func KeyFromID(gameID, datasetID string) models.DateRangeKey {
	parts := strings.Split(strings.TrimPrefix(datasetID, gameID), "_")
	if len(parts) != 4 {
		return models.InvalidDateRangeKey()
	}
	fromYear, fromMonth, okFrom := parseCompactYearMonth(parts[1])
	toYear, toMonth, okTo := parseCompactYearMonth(parts[3])
	if !okFrom || !okTo {
		return models.InvalidDateRangeKey()
	}
	return models.NewDateRangeKey(fromYear, fromMonth, toYear, toMonth)
}

// KeyFromDates строит ключ из явных start_date/end_date.
func KeyFromDates(start, end any) models.DateRangeKey {
	from, okFrom := parseDate(start)
	to, okTo := parseDate(end)
	if !okFrom || !okTo {
		return models.InvalidDateRangeKey()
	}
	return models.NewDateRangeKey(from.Year(), int(from.Month()), to.Year(), int(to.Month()))
}

// parseCompactYearMonth читает год и месяц из восьми цифр YYYYMMDD.
// Месяц вне 1..12 считается ошибкой.
func parseCompactYearMonth(s string) (int, int, bool) {
	if len(s) != 8 {
		return 0, 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, 0, false
		}
	}
	year, err := strconv.Atoi(s[0:4])
	if err != nil {
		return 0, 0, false
	}
	mon, err := strconv.Atoi(s[4:6])
	if err != nil || mon < 1 || mon > 12 {
		return 0, 0, false
	}
	return year, mon, true
}

func parseDate(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func optionalString(fields map[string]any, key string) string {
	v, ok := fields[key]
	if !ok || v == nil {
		return ""
	}
	return cast.ToString(v)
}

func firstString(fields map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := optionalString(fields, key); s != "" {
			return s
		}
	}
	return ""
}
