// Package usage считает сессии игры напрямую по событиям в BigQuery.
package usage

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"cloud.google.com/go/bigquery"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/magabrotheeeer/ogd-file-api/internal/config"
	"github.com/magabrotheeeer/ogd-file-api/internal/lib/month"
)

// Counter считает сессии одной игры.
type Counter interface {
	TotalSessionsForMonth(ctx context.Context, year, mon int) (int64, error)
	SessionsPerDayForMonth(ctx context.Context, year, mon int) (*SessionsByDay, error)
	Close() error
}

// SessionsByDay сессии по дням месяца, ключ номер дня без ведущего нуля.
// Дни идут по порядку, дни без событий равны нулю.
type SessionsByDay = orderedmap.OrderedMap[string, int64]

// BigQueryCounter Counter поверх клиента BigQuery.
type BigQueryCounter struct {
	client *bigquery.Client
	game   config.BigQueryGame
}

// NewBigQueryCounter создаёт клиент для проекта игры. Пустой CredentialsPath
// означает учётные данные по умолчанию из окружения.
func NewBigQueryCounter(ctx context.Context, game config.BigQueryGame) (*BigQueryCounter, error) {
	const op = "usage.NewBigQueryCounter"

	var opts []option.ClientOption
	if game.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(game.CredentialsPath))
	}
	client, err := bigquery.NewClient(ctx, game.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &BigQueryCounter{client: client, game: game}, nil
}

type totalRow struct {
	Count int64 `bigquery:"mycount"`
}

type dayRow struct {
	Count  int64  `bigquery:"mycount"`
	Suffix string `bigquery:"table_suffix"`
}

// TotalSessionsForMonth число уникальных сессий за месяц.
func (c *BigQueryCounter) TotalSessionsForMonth(ctx context.Context, year, mon int) (int64, error) {
	const op = "usage.TotalSessionsForMonth"

	q, err := TotalSessionsQuery(c.game, year, mon)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	it, err := c.read(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var row totalRow
	err = it.Next(&row)
	if errors.Is(err, iterator.Done) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return row.Count, nil
}

// SessionsPerDayForMonth число уникальных сессий по каждому дню месяца.
func (c *BigQueryCounter) SessionsPerDayForMonth(ctx context.Context, year, mon int) (*SessionsByDay, error) {
	const op = "usage.SessionsPerDayForMonth"

	q, err := SessionsPerDayQuery(c.game, year, mon)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	it, err := c.read(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	counts := make(map[int]int64)
	for {
		var row dayRow
		err := it.Next(&row)
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if day, ok := DayFromSuffix(row.Suffix); ok {
			counts[day] = row.Count
		}
	}
	return FillDays(year, mon, counts), nil
}

// Close закрывает клиент BigQuery.
func (c *BigQueryCounter) Close() error {
	return c.client.Close()
}

func (c *BigQueryCounter) read(ctx context.Context, q Query) (*bigquery.RowIterator, error) {
	query := c.client.Query(q.SQL)
	query.Parameters = q.Params
	return query.Read(ctx)
}

// DayFromSuffix достаёт день месяца из суффикса таблицы YYYYMMDD.
func DayFromSuffix(suffix string) (int, bool) {
	if len(suffix) != 8 {
		return 0, false
	}
	day, err := strconv.Atoi(suffix[6:8])
	if err != nil || day < 1 || day > 31 {
		return 0, false
	}
	return day, true
}

// FillDays раскладывает счётчики по всем дням месяца, недостающие дни равны нулю.
func FillDays(year, mon int, counts map[int]int64) *SessionsByDay {
	days := month.DaysIn(year, mon)
	out := orderedmap.New[string, int64]()
	for day := 1; day <= days; day++ {
		out.Set(strconv.Itoa(day), counts[day])
	}
	return out
}
