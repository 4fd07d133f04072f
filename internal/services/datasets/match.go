package datasets

import (
	"github.com/magabrotheeeer/ogd-file-api/internal/lib/month"
	"github.com/magabrotheeeer/ogd-file-api/internal/models"
)

// MatchDataset ищет датасет, диапазон которого содержит запрошенный месяц.
// Из нескольких совпавших выбирается более новый по IsNewerThan, при равенстве
// побеждает последний в порядке индекса. Датасеты с невалидным ключом пропускаются.
// Возвращает nil, если совпадений нет.
func MatchDataset(year, mon int, datasets []*models.Dataset) *models.Dataset {
	var best *models.Dataset
	for _, d := range datasets {
		if !d.Key.IsValid() {
			continue
		}
		if d.Key.Contains(year, mon) && d.IsNewerThan(best) {
			best = d
		}
	}
	return best
}

// MonthUsage количество сессий за один месяц помесячного ряда.
type MonthUsage struct {
	Year          int
	Month         int
	TotalSessions int
	// Dataset датасет, начинающийся в этом месяце, или nil для пропуска.
	Dataset *models.Dataset
}

// MonthlyUsage строит непрерывный ряд от первого до последнего месяца, в котором
// начинается какой-либо валидный датасет. Сессии датасета относятся целиком
// к месяцу начала его диапазона, месяцы без датасета заполняются нулём.
// Порядок датасетов во входе не важен. Без валидных датасетов ряд пустой.
func MonthlyUsage(datasets []*models.Dataset) []MonthUsage {
	byMonth := make(map[string]*models.Dataset)

	found := false
	var firstYear, firstMonth, lastYear, lastMonth int
	for _, d := range datasets {
		if !d.Key.IsValid() {
			continue
		}
		y, m := d.Key.FromYear, d.Key.FromMonth
		byMonth[month.Key(y, m)] = d

		if !found || month.Before(y, m, firstYear, firstMonth) {
			firstYear, firstMonth = y, m
		}
		if !found || month.Before(lastYear, lastMonth, y, m) {
			lastYear, lastMonth = y, m
		}
		found = true
	}
	if !found {
		return []MonthUsage{}
	}

	series := make([]MonthUsage, 0, month.Span(firstYear, firstMonth, lastYear, lastMonth))
	last := month.Index(lastYear, lastMonth)
	for idx := month.Index(firstYear, firstMonth); idx <= last; idx++ {
		y, m := month.FromIndex(idx)
		entry := MonthUsage{Year: y, Month: m}
		if d, ok := byMonth[month.Key(y, m)]; ok {
			entry.Dataset = d
			if d.SessionCount != nil {
				entry.TotalSessions = *d.SessionCount
			}
		}
		series = append(series, entry)
	}
	return series
}
