// Package month содержит арифметику календарных месяцев, которой пользуются
// выборка датасетов и помесячная агрегация.
package month

import (
	"fmt"
	"time"
)

// Index переводит пару (год, месяц) в порядковый номер месяца.
// Соседние месяцы отличаются ровно на единицу, в том числе на стыке декабря и января.
func Index(year, month int) int {
	return year*12 + month - 1
}

// FromIndex обратная к Index функция.
func FromIndex(idx int) (year, month int) {
	return idx / 12, idx%12 + 1
}

// Next возвращает месяц, следующий за переданным.
func Next(year, month int) (int, int) {
	return FromIndex(Index(year, month) + 1)
}

// Before сравнивает месяцы лексикографически: сначала год, потом месяц.
func Before(y1, m1, y2, m2 int) bool {
	return Index(y1, m1) < Index(y2, m2)
}

// Span считает количество месяцев в отрезке [from, to] включительно.
// Для перевёрнутого отрезка возвращает 0.
func Span(fromYear, fromMonth, toYear, toMonth int) int {
	n := Index(toYear, toMonth) - Index(fromYear, fromMonth) + 1
	if n < 0 {
		return 0
	}
	return n
}

// Key формирует ключ YYYYMM, месяц дополняется нулём до двух знаков.
func Key(year, month int) string {
	return fmt.Sprintf("%d%02d", year, month)
}

// LastCompleted возвращает последний полностью завершившийся месяц относительно now.
func LastCompleted(now time.Time) (year, month int) {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prev := firstOfMonth.AddDate(0, 0, -1)
	return prev.Year(), int(prev.Month())
}

// DaysIn возвращает количество дней в месяце.
func DaysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
