package analytics

import (
	"fmt"

	"drinkdays/internal/calendar"
	"drinkdays/internal/models"
)

// WeekDay is one day of a Monday-anchored week. Weekday is Monday = 0.
type WeekDay struct {
	Weekday int    `json:"weekday"`
	Date    string `json:"date"`
	Drank   bool   `json:"drank"`
}

// WeekDates returns Monday..Sunday of the week at offset from the current
// week: 0 is this week, negative offsets are in the past.
func WeekDates(today calendar.Date, offset int) [7]calendar.Date {
	var dates [7]calendar.Date
	mondayOffset := calendar.MondayIndex(today.Weekday())
	for i := range dates {
		dates[i] = today.AddDays(-mondayOffset + i + offset*7)
	}
	return dates
}

// ForWeek scopes records to the seven dates of a week.
func ForWeek(records []models.DrinkRecord, today calendar.Date, offset int) []models.DrinkRecord {
	idx := indexByDate(records)
	scoped := make([]models.DrinkRecord, 0, 7)
	for _, d := range WeekDates(today, offset) {
		if r, ok := idx[d.Key()]; ok {
			scoped = append(scoped, r)
		}
	}
	return scoped
}

func WeekBreakdownByOffset(records []models.DrinkRecord, today calendar.Date, offset int) []WeekDay {
	idx := indexByDate(records)
	days := make([]WeekDay, 0, 7)
	for i, d := range WeekDates(today, offset) {
		key := d.Key()
		r, ok := idx[key]
		days = append(days, WeekDay{Weekday: i, Date: key, Drank: ok && r.Drank})
	}
	return days
}

// WeekLabel renders the week range as "M/D ~ M/D".
func WeekLabel(today calendar.Date, offset int) string {
	dates := WeekDates(today, offset)
	start, end := dates[0], dates[6]
	return fmt.Sprintf("%d/%d ~ %d/%d", int(start.Month), start.Day, int(end.Month), end.Day)
}

func WeekDrinkingDaysByOffset(records []models.DrinkRecord, today calendar.Date, offset int) int {
	return DrinkingDays(ForWeek(records, today, offset))
}

func WeeklyEstimatedCost(records []models.DrinkRecord, settings models.AppSettings, today calendar.Date, offset int) int64 {
	return EstimatedCost(ForWeek(records, today, offset), settings)
}

func WeeklyDrinkAmount(records []models.DrinkRecord, today calendar.Date, offset int) Amount {
	return DrinkAmount(ForWeek(records, today, offset))
}

func WeekComparison(records []models.DrinkRecord, today calendar.Date, offset int) int {
	return WeekDrinkingDaysByOffset(records, today, offset) - WeekDrinkingDaysByOffset(records, today, offset-1)
}

func WeeklyCostComparison(records []models.DrinkRecord, settings models.AppSettings, today calendar.Date, offset int) int64 {
	return WeeklyEstimatedCost(records, settings, today, offset) - WeeklyEstimatedCost(records, settings, today, offset-1)
}
