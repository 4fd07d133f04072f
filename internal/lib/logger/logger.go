// Package logger собирает *slog.Logger в зависимости от окружения.
// Для local используется текстовый вывод, для остальных окружений — JSON.
// Если задан файл, записи дублируются в него с ротацией через lumberjack.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	envLocal = "local"

	maxFileSizeMB = 100
	maxBackups    = 10
)

// New возвращает логгер для окружения env с уровнем level.
// Пустой file означает вывод только в stdout.
func New(env, level, file string) *slog.Logger {
	var out io.Writer = os.Stdout
	if file != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    maxFileSizeMB,
			MaxBackups: maxBackups,
		})
	}
	return NewWithWriter(out, env, level)
}

// NewWithWriter то же, что New, но пишет в переданный writer.
func NewWithWriter(out io.Writer, env, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	if env == envLocal {
		return slog.New(slog.NewTextHandler(out, opts))
	}
	return slog.New(slog.NewJSONHandler(out, opts))
}

// ParseLevel переводит строковый уровень в slog.Level, по умолчанию Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
