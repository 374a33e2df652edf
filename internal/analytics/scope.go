// Package analytics derives streaks, rates, costs and period breakdowns from
// a snapshot of drink records. Every function is pure: the records slice is
// only read, and settings and "today" are explicit arguments.
package analytics

import (
	"strings"
	"time"

	"drinkdays/internal/calendar"
	"drinkdays/internal/models"
)

// ForMonth scopes records to a month by key prefix. This relies on date
// keys always being in canonical zero-padded form.
func ForMonth(records []models.DrinkRecord, year int, month time.Month) []models.DrinkRecord {
	return withPrefix(records, calendar.MonthPrefix(year, month))
}

// ForYear scopes records to a year by key prefix.
func ForYear(records []models.DrinkRecord, year int) []models.DrinkRecord {
	return withPrefix(records, calendar.YearPrefix(year)+"-")
}

func withPrefix(records []models.DrinkRecord, prefix string) []models.DrinkRecord {
	scoped := make([]models.DrinkRecord, 0)
	for _, r := range records {
		if strings.HasPrefix(r.Date, prefix) {
			scoped = append(scoped, r)
		}
	}
	return scoped
}

// PreviousMonth rolls January back into December of the previous year.
func PreviousMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

func indexByDate(records []models.DrinkRecord) map[string]models.DrinkRecord {
	idx := make(map[string]models.DrinkRecord, len(records))
	for _, r := range records {
		if _, ok := idx[r.Date]; !ok {
			idx[r.Date] = r
		}
	}
	return idx
}

// DrinkingDays counts distinct dates marked as drinking days.
func DrinkingDays(records []models.DrinkRecord) int {
	days := make(map[string]struct{})
	for _, r := range records {
		if r.Drank {
			days[r.Date] = struct{}{}
		}
	}
	return len(days)
}
