// Package models содержит доменные структуры каталога датасетов: ключ диапазона
// дат, описание одного экспорта, набор экспортов игры и весь каталог целиком.
// Структуры строятся один раз при разборе индекса и дальше не меняются.
package models

import (
	"fmt"
	"time"
)

// Unknown значение для полей, которые отсутствовали в индексе.
const Unknown = "UNKNOWN"

// DateRangeKey включительный диапазон месяцев [From, To], разобранный из индекса.
// Если хотя бы одна компонента не разобралась, ключ невалиден и
// не участвует ни в выборке, ни в агрегации.
type DateRangeKey struct {
	FromYear  int
	FromMonth int
	ToYear    int
	ToMonth   int
	valid     bool
}

// NewDateRangeKey создаёт валидный ключ.
func NewDateRangeKey(fromYear, fromMonth, toYear, toMonth int) DateRangeKey {
	return DateRangeKey{
		FromYear:  fromYear,
		FromMonth: fromMonth,
		ToYear:    toYear,
		ToMonth:   toMonth,
		valid:     true,
	}
}

// InvalidDateRangeKey ключ, который не удалось разобрать.
func InvalidDateRangeKey() DateRangeKey {
	return DateRangeKey{}
}

// IsValid true, только если все четыре компоненты разобраны.
func (k DateRangeKey) IsValid() bool {
	return k.valid
}

// Contains проверяет попадание месяца в диапазон.
//
// Год и месяц сравниваются независимо друг от друга. Это не календарная
// проверка: диапазон 2023-06..2024-03 не содержит 2024-01, потому что 1 < 6.
// Поведение сохранено как есть, исправление меняет ответы API.
func (k DateRangeKey) Contains(year, month int) bool {
	if !k.valid {
		return false
	}
	return year >= k.FromYear &&
		month >= k.FromMonth &&
		year <= k.ToYear &&
		month <= k.ToMonth
}

func (k DateRangeKey) String() string {
	if !k.valid {
		return "INVALID"
	}
	return fmt.Sprintf("%04d-%02d..%04d-%02d", k.FromYear, k.FromMonth, k.ToYear, k.ToMonth)
}

// Files относительные пути к файлам датасета. Пустая строка — файла нет.
type Files struct {
	Raw        string
	Events     string
	Sessions   string
	Players    string
	Population string
}

// Templates относительные пути к шаблонам. Пустая строка — шаблона нет.
type Templates struct {
	Events     string
	Sessions   string
	Players    string
	Population string
}

// Dataset один экспорт данных игры за диапазон месяцев.
type Dataset struct {
	ID           string       // Идентификатор из индекса, например AQUALAB_20240101_to_20240131
	Key          DateRangeKey // Разобранный диапазон
	SessionCount *int         // nil, если в индексе не указано
	PlayerCount  *int
	DateModified time.Time // Нулевое значение означает UNKNOWN
	RevisionTag  string    // Короткий хеш ревизии или UNKNOWN
	Files        Files
	Templates    Templates
}

// DateModifiedKnown сообщает, была ли дата изменения в индексе.
func (d *Dataset) DateModifiedKnown() bool {
	return !d.DateModified.IsZero()
}

// DateModifiedString дата изменения в формате MM/DD/YYYY или UNKNOWN.
func (d *Dataset) DateModifiedString() string {
	if !d.DateModifiedKnown() {
		return Unknown
	}
	return d.DateModified.Format("01/02/2006")
}

// HasRevision сообщает, известна ли ревизия, которой сделан экспорт.
func (d *Dataset) HasRevision() bool {
	return d.RevisionTag != "" && d.RevisionTag != Unknown
}

// IsNewerThan решает, должен ли d заменить other среди совпавших датасетов.
//
// Побеждает известная и более поздняя дата изменения. При равных датах или
// когда обе неизвестны побеждает d, то есть последний перечисленный.
func (d *Dataset) IsNewerThan(other *Dataset) bool {
	if other == nil {
		return true
	}
	if !other.DateModifiedKnown() {
		return true
	}
	if !d.DateModifiedKnown() {
		return false
	}
	return !d.DateModified.Before(other.DateModified)
}

// File возвращает относительный путь файла нужного типа.
func (d *Dataset) File(ft FileType) string {
	switch ft {
	case FileTypeSession:
		return d.Files.Sessions
	case FileTypePlayer:
		return d.Files.Players
	case FileTypePopulation:
		return d.Files.Population
	case FileTypeEvent:
		return d.Files.Events
	default:
		return ""
	}
}
