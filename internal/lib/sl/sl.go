// Package sl содержит вспомогательные функции для работы с логгером slog.
// Основная цель — упростить формирование структурированных полей лога,
// например, для передачи информации об ошибках и идентификаторах игр.
package sl

import "log/slog"

// Err возвращает slog.Attr с ключом "error" и значением текста ошибки.
//
// Пример:
//
//	log.Error("failed to fetch file index", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Game возвращает атрибут с идентификатором игры.
func Game(gameID string) slog.Attr {
	return slog.String("game_id", gameID)
}

// Dataset возвращает атрибут с идентификатором датасета из индекса.
func Dataset(datasetID string) slog.Attr {
	return slog.String("dataset_id", datasetID)
}

// Month группирует год и месяц запроса.
func Month(year, month int) slog.Attr {
	return slog.Group("month", slog.Int("year", year), slog.Int("month", month))
}
