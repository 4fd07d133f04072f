package usage

import (
	"errors"
	"fmt"
	"regexp"

	"cloud.google.com/go/bigquery"

	"github.com/magabrotheeeer/ogd-file-api/internal/config"
	"github.com/magabrotheeeer/ogd-file-api/internal/lib/month"
)

// SchemaFirebase схема выгрузки событий Firebase Analytics.
const SchemaFirebase = "EVENTS-FIREBASE"

var (
	// ErrUnsupportedSchema для схемы событий игры нет запросов.
	ErrUnsupportedSchema = errors.New("unsupported schema type")
	// ErrBadTableRef имя таблицы нельзя безопасно подставить в запрос.
	ErrBadTableRef = errors.New("invalid table reference")
)

// Имя таблицы не параметризуется, поэтому допускаем только безопасные символы.
var tableRefRe = regexp.MustCompile(`^[A-Za-z0-9_\-]+\.[A-Za-z0-9_]+\.[A-Za-z0-9_*]+$`)

// Query текст запроса и его параметры.
type Query struct {
	SQL    string
	Params []bigquery.QueryParameter
}

// TableRef полное имя таблицы с шаблоном, например aqualab-57f88.analytics_271167280.events_*.
func TableRef(game config.BigQueryGame) (string, error) {
	ref := game.ProjectID + "." + game.DatasetID + "." + game.TablePrefix
	if !tableRefRe.MatchString(ref) {
		return "", fmt.Errorf("%q: %w", ref, ErrBadTableRef)
	}
	return ref, nil
}

// TotalSessionsQuery число уникальных сессий за месяц.
func TotalSessionsQuery(game config.BigQueryGame, year, mon int) (Query, error) {
	return buildQuery(game, year, mon, false)
}

// SessionsPerDayQuery число уникальных сессий по суффиксу дневной таблицы.
func SessionsPerDayQuery(game config.BigQueryGame, year, mon int) (Query, error) {
	return buildQuery(game, year, mon, true)
}

func buildQuery(game config.BigQueryGame, year, mon int, perDay bool) (Query, error) {
	if game.SchemaType != SchemaFirebase {
		return Query{}, fmt.Errorf("%q: %w", game.SchemaType, ErrUnsupportedSchema)
	}
	ref, err := TableRef(game)
	if err != nil {
		return Query{}, err
	}

	var sql string
	if perDay {
		sql = "SELECT COUNT(DISTINCT(session_id)) AS mycount, table_suffix" +
			" FROM (SELECT param_session.value.int_value AS session_id, _TABLE_SUFFIX AS table_suffix" +
			" FROM `" + ref + "` CROSS JOIN UNNEST(event_params) AS param_session" +
			" WHERE _TABLE_SUFFIX BETWEEN @start AND @end)" +
			" GROUP BY table_suffix ORDER BY table_suffix"
	} else {
		sql = "SELECT COUNT(DISTINCT(session_id)) AS mycount" +
			" FROM (SELECT param_session.value.int_value AS session_id" +
			" FROM `" + ref + "` CROSS JOIN UNNEST(event_params) AS param_session" +
			" WHERE _TABLE_SUFFIX BETWEEN @start AND @end)"
	}

	start, end := suffixRange(year, mon)
	return Query{
		SQL: sql,
		Params: []bigquery.QueryParameter{
			{Name: "start", Value: start},
			{Name: "end", Value: end},
		},
	}, nil
}

// suffixRange первый и последний суффикс дневных таблиц месяца, YYYYMMDD.
func suffixRange(year, mon int) (string, string) {
	key := month.Key(year, mon)
	return key + "01", fmt.Sprintf("%s%02d", key, month.DaysIn(year, mon))
}
