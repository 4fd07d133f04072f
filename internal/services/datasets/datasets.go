// Package datasets содержит бизнес-логику File API: поиск датасета за месяц,
// помесячный ряд сессий и сборку ответов поверх свежего каталога.
// Каталог запрашивается у провайдера на каждый вызов и нигде не хранится.
package datasets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/ogd-file-api/internal/datafile"
	"github.com/magabrotheeeer/ogd-file-api/internal/lib/sl"
	"github.com/magabrotheeeer/ogd-file-api/internal/models"
)

var (
	// ErrEmptyCatalog в индексе нет ни одной игры.
	ErrEmptyCatalog = errors.New("game list not found, or had no datasets listed")
	// ErrGameNotFound игры нет в индексе или у неё нет датасетов.
	ErrGameNotFound = errors.New("game has no available datasets")
	// ErrNoMatchingDataset ни один датасет не покрывает запрошенный месяц.
	ErrNoMatchingDataset = errors.New("no dataset covers the requested month")
	// ErrFileNotAvailable у найденного датасета нет файла запрошенного типа.
	ErrFileNotAvailable = errors.New("dataset has no file of the requested type")
	// ErrUnsupportedFileType тип файла известен, но ещё не поддерживается.
	ErrUnsupportedFileType = errors.New("event files are not yet supported")
	// ErrUnknownFileType тип файла не распознан.
	ErrUnknownFileType = errors.New("unrecognized file type")
)

// IndexProvider отдаёт свежий каталог.
type IndexProvider interface {
	Fetch(ctx context.Context) (*models.Catalog, error)
}

// FileReader читает таблицу файла датасета по абсолютному адресу.
type FileReader interface {
	ReadTable(ctx context.Context, url string) (*datafile.Table, error)
}

// Links базовые адреса для ссылок в описании датасета.
type Links struct {
	CodespacesBase string
	GithubBase     string
}

// Service собирает ответы File API.
type Service struct {
	index IndexProvider
	files FileReader
	links Links
	log   *slog.Logger
}

// NewService создаёт Service.
func NewService(index IndexProvider, files FileReader, links Links, log *slog.Logger) *Service {
	return &Service{
		index: index,
		files: files,
		links: links,
		log:   log,
	}
}

// GameIDs возвращает идентификаторы всех игр индекса в его порядке.
func (s *Service) GameIDs(ctx context.Context) ([]string, error) {
	const op = "services.datasets.GameIDs"

	cat, err := s.index.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if cat.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyCatalog)
	}
	return cat.GameIDs(), nil
}

// MonthDatasets одна строка помесячного ряда для ответа API.
type MonthDatasets struct {
	Year           int     `json:"year"`
	Month          int     `json:"month"`
	TotalSessions  int     `json:"total_sessions"`
	SessionsFile   *string `json:"sessions_file"`
	PlayersFile    *string `json:"players_file"`
	PopulationFile *string `json:"population_file"`
}

// Usage помесячный ряд игры.
type Usage struct {
	GameID string
	Months []MonthDatasets
}

// MonthlyUsage строит помесячный ряд сессий игры с адресами файлов.
func (s *Service) MonthlyUsage(ctx context.Context, gameID string) (*Usage, error) {
	const op = "services.datasets.MonthlyUsage"

	cat, game, err := s.game(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	series := MonthlyUsage(game.Datasets)
	months := make([]MonthDatasets, 0, len(series))
	for _, m := range series {
		row := MonthDatasets{Year: m.Year, Month: m.Month, TotalSessions: m.TotalSessions}
		if m.Dataset != nil {
			row.SessionsFile = cat.Config.FileURL(m.Dataset.Files.Sessions)
			row.PlayersFile = cat.Config.FileURL(m.Dataset.Files.Players)
			row.PopulationFile = cat.Config.FileURL(m.Dataset.Files.Population)
		}
		months = append(months, row)
	}

	s.log.Debug("built monthly usage", sl.Game(gameID), slog.Int("months", len(months)))
	return &Usage{GameID: gameID, Months: months}, nil
}

// FileInfo описание файлов и шаблонов найденного датасета.
type FileInfo struct {
	FirstYear          int     `json:"first_year"`
	FirstMonth         int     `json:"first_month"`
	LastYear           int     `json:"last_year"`
	LastMonth          int     `json:"last_month"`
	RawFile            *string `json:"raw_file"`
	EventsFile         *string `json:"events_file"`
	SessionsFile       *string `json:"sessions_file"`
	PlayersFile        *string `json:"players_file"`
	PopulationFile     *string `json:"population_file"`
	EventsTemplate     *string `json:"events_template"`
	SessionsTemplate   *string `json:"sessions_template"`
	PlayersTemplate    *string `json:"players_template"`
	PopulationTemplate *string `json:"population_template"`
	EventsCodespace    string  `json:"events_codespace"`
	SessionsCodespace  string  `json:"sessions_codespace"`
	PlayersCodespace   string  `json:"players_codespace"`
	DetectorsLink      *string `json:"detectors_link"`
	FeaturesLink       *string `json:"features_link"`
	FoundMatchingRange bool    `json:"found_matching_range"`
}

// Match возвращает датасет игры, покрывающий месяц запроса, вместе с каталогом.
func (s *Service) Match(ctx context.Context, params models.RequestParams) (*models.Catalog, *models.Dataset, error) {
	const op = "services.datasets.Match"

	cat, game, err := s.game(ctx, params.GameID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	matched := MatchDataset(params.Year, params.Month, game.Datasets)
	if matched == nil {
		return nil, nil, fmt.Errorf("%s: %s in %s: %w", op, params.GameID, params.MonthString(), ErrNoMatchingDataset)
	}
	s.log.Debug("matched dataset", sl.Game(params.GameID), sl.Month(params.Year, params.Month),
		sl.Dataset(matched.ID), slog.String("date_modified", matched.DateModifiedString()))
	return cat, matched, nil
}

// FileInfo описывает датасет, покрывающий месяц запроса.
func (s *Service) FileInfo(ctx context.Context, params models.RequestParams) (*FileInfo, error) {
	cat, d, err := s.Match(ctx, params)
	if err != nil {
		return nil, err
	}
	return s.fileInfo(cat.Config, params.GameID, d), nil
}

func (s *Service) fileInfo(cfg models.IndexConfig, gameID string, d *models.Dataset) *FileInfo {
	// Ветки репозитория примеров названы в нижнем регистре через дефис.
	branch := strings.ReplaceAll(strings.ToLower(gameID), "_", "-")
	codespace := func(template string) string {
		return fmt.Sprintf("%s%s?quickstart=1&devcontainer_path=.devcontainer%%2F%s%%2Fdevcontainer.json",
			s.links.CodespacesBase, branch, template)
	}

	info := &FileInfo{
		FirstYear:          d.Key.FromYear,
		FirstMonth:         d.Key.FromMonth,
		LastYear:           d.Key.ToYear,
		LastMonth:          d.Key.ToMonth,
		RawFile:            cfg.FileURL(d.Files.Raw),
		EventsFile:         cfg.FileURL(d.Files.Events),
		SessionsFile:       cfg.FileURL(d.Files.Sessions),
		PlayersFile:        cfg.FileURL(d.Files.Players),
		PopulationFile:     cfg.FileURL(d.Files.Population),
		EventsTemplate:     cfg.TemplateURL(d.Templates.Events),
		SessionsTemplate:   cfg.TemplateURL(d.Templates.Sessions),
		PlayersTemplate:    cfg.TemplateURL(d.Templates.Players),
		PopulationTemplate: cfg.TemplateURL(d.Templates.Population),
		EventsCodespace:    codespace("event-template"),
		SessionsCodespace:  codespace("session-template"),
		PlayersCodespace:   codespace("player-template"),
		FoundMatchingRange: true,
	}

	if d.HasRevision() {
		detectors := fmt.Sprintf("%s%s/src/ogd/games/%s/detectors", s.links.GithubBase, d.RevisionTag, strings.ToUpper(gameID))
		features := fmt.Sprintf("%s%s/src/ogd/games/%s/features", s.links.GithubBase, d.RevisionTag, strings.ToUpper(gameID))
		info.DetectorsLink = &detectors
		info.FeaturesLink = &features
	}
	return info
}

// DatasetFile скачивает и разбирает файл нужного типа из датасета, покрывающего месяц.
func (s *Service) DatasetFile(ctx context.Context, params models.RequestParams, rawType string) (*datafile.Table, error) {
	const op = "services.datasets.DatasetFile"

	ft, ok := models.ParseFileType(rawType)
	if !ok {
		return nil, fmt.Errorf("%s: %q: %w", op, rawType, ErrUnknownFileType)
	}
	if ft == models.FileTypeEvent {
		return nil, fmt.Errorf("%s: %w", op, ErrUnsupportedFileType)
	}

	cat, d, err := s.Match(ctx, params)
	if err != nil {
		return nil, err
	}

	url := cat.Config.FileURL(d.File(ft))
	if url == nil {
		return nil, fmt.Errorf("%s: %s for %s in %s: %w", op, ft, params.GameID, params.MonthString(), ErrFileNotAvailable)
	}

	table, err := s.files.ReadTable(ctx, *url)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return table, nil
}

func (s *Service) game(ctx context.Context, gameID string) (*models.Catalog, *models.GameDatasets, error) {
	cat, err := s.index.Fetch(ctx)
	if err != nil {
		return nil, nil, err
	}
	game, ok := cat.Game(gameID)
	if !ok || len(game.Datasets) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", gameID, ErrGameNotFound)
	}
	return cat, game, nil
}
