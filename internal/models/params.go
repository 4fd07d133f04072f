package models

import (
	"fmt"
	"strings"
)

// RequestParams очищенные параметры запроса.
// Пустой GameID означает, что идентификатор был некорректен.
type RequestParams struct {
	GameID string
	Year   int
	Month  int
}

// HasGame сообщает, прошёл ли идентификатор игры проверку.
func (p RequestParams) HasGame() bool {
	return p.GameID != ""
}

// MonthString месяц запроса в виде MM/YYYY.
func (p RequestParams) MonthString() string {
	return fmt.Sprintf("%02d/%04d", p.Month, p.Year)
}

// FileType тип файла датасета, который можно запросить.
type FileType string

const (
	FileTypeSession    FileType = "SESSION"
	FileTypePlayer     FileType = "PLAYER"
	FileTypePopulation FileType = "POPULATION"
	FileTypeEvent      FileType = "EVENT"
)

// ParseFileType разбирает тип файла без учёта регистра.
func ParseFileType(raw string) (FileType, bool) {
	switch ft := FileType(strings.ToUpper(raw)); ft {
	case FileTypeSession, FileTypePlayer, FileTypePopulation, FileTypeEvent:
		return ft, true
	default:
		return "", false
	}
}
