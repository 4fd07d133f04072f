package usage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/ogd-file-api/internal/config"
	"github.com/magabrotheeeer/ogd-file-api/internal/lib/sl"
	"github.com/magabrotheeeer/ogd-file-api/internal/models"
)

// ErrGameNotMapped для игры не настроен доступ к BigQuery.
var ErrGameNotMapped = errors.New("game has no bigquery mapping")

// CounterFactory создаёт Counter для настроек игры.
type CounterFactory func(ctx context.Context, game config.BigQueryGame) (Counter, error)

// MonthUsage живая статистика игры за месяц.
type MonthUsage struct {
	GameID               string         `json:"game_id"`
	SelectedMonth        int            `json:"selected_month"`
	SelectedYear         int            `json:"selected_year"`
	TotalMonthlySessions int64          `json:"total_monthly_sessions"`
	SessionsByDay        *SessionsByDay `json:"sessions_by_day"`
}

// Service отвечает на запросы статистики по настроенным играм.
type Service struct {
	games      map[string]config.BigQueryGame
	newCounter CounterFactory
	log        *slog.Logger
}

// NewService создаёт Service. Если newCounter равен nil, используется BigQuery.
func NewService(games map[string]config.BigQueryGame, newCounter CounterFactory, log *slog.Logger) *Service {
	if newCounter == nil {
		newCounter = func(ctx context.Context, game config.BigQueryGame) (Counter, error) {
			return NewBigQueryCounter(ctx, game)
		}
	}
	return &Service{
		games:      games,
		newCounter: newCounter,
		log:        log,
	}
}

// GameUsageByMonth считает сессии за месяц и по дням. Клиент создаётся на запрос.
func (s *Service) GameUsageByMonth(ctx context.Context, params models.RequestParams) (*MonthUsage, error) {
	const op = "usage.GameUsageByMonth"

	game, ok := s.games[params.GameID]
	if !ok {
		return nil, fmt.Errorf("%s: %s: %w", op, params.GameID, ErrGameNotMapped)
	}

	counter, err := s.newCounter(ctx, game)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if err := counter.Close(); err != nil {
			s.log.Warn("failed to close usage counter", sl.Game(params.GameID), sl.Err(err))
		}
	}()

	total, err := counter.TotalSessionsForMonth(ctx, params.Year, params.Month)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	byDay, err := counter.SessionsPerDayForMonth(ctx, params.Year, params.Month)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &MonthUsage{
		GameID:               params.GameID,
		SelectedMonth:        params.Month,
		SelectedYear:         params.Year,
		TotalMonthlySessions: total,
		SessionsByDay:        byDay,
	}, nil
}
