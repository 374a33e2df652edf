package analytics

import (
	"time"

	"drinkdays/internal/calendar"
	"drinkdays/internal/models"
)

type FavoriteDay struct {
	Weekday time.Weekday `json:"weekday"`
	Count   int          `json:"count"`
}

// WeekdayHistogram counts drinking days per weekday, Sunday = 0.
func WeekdayHistogram(records []models.DrinkRecord) [7]int {
	var counts [7]int
	for _, r := range records {
		if !r.Drank {
			continue
		}
		d, err := calendar.ParseDateKey(r.Date)
		if err != nil {
			continue
		}
		counts[d.Weekday()]++
	}
	return counts
}

// FavoriteDrinkingDay returns the weekday with the most drinking days. Ties
// go to the earliest weekday counting from Sunday. ok is false when there
// are no drinking days.
func FavoriteDrinkingDay(records []models.DrinkRecord) (FavoriteDay, bool) {
	counts := WeekdayHistogram(records)
	best := 0
	for i := 1; i < len(counts); i++ {
		if counts[i] > counts[best] {
			best = i
		}
	}
	if counts[best] == 0 {
		return FavoriteDay{}, false
	}
	return FavoriteDay{Weekday: time.Weekday(best), Count: counts[best]}, true
}

// DayOfWeekPattern is the same histogram indexed Monday = 0 .. Sunday = 6
// for charts.
func DayOfWeekPattern(records []models.DrinkRecord) [7]int {
	var pattern [7]int
	for day, n := range WeekdayHistogram(records) {
		pattern[calendar.MondayIndex(time.Weekday(day))] += n
	}
	return pattern
}
