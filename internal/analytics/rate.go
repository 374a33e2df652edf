package analytics

import (
	"math"
	"time"

	"drinkdays/internal/calendar"
	"drinkdays/internal/models"
)

// SoberRate is the rounded percentage of sober records in scope, 0 when
// the scope is empty.
func SoberRate(records []models.DrinkRecord) int {
	if len(records) == 0 {
		return 0
	}
	sober := 0
	for _, r := range records {
		if !r.Drank {
			sober++
		}
	}
	return int(math.Round(float64(sober) / float64(len(records)) * 100))
}

func MonthlySoberRate(records []models.DrinkRecord, year int, month time.Month) int {
	return SoberRate(ForMonth(records, year, month))
}

func YearlySoberRate(records []models.DrinkRecord, year int) int {
	return SoberRate(ForYear(records, year))
}

func WeeklySoberRate(records []models.DrinkRecord, today calendar.Date, offset int) int {
	return SoberRate(ForWeek(records, today, offset))
}
