package analytics

import (
	"sort"
	"strconv"
	"time"

	"drinkdays/internal/calendar"
	"drinkdays/internal/models"
)

// WeekBucket is one of the four fixed day ranges of a month.
type WeekBucket struct {
	Week int `json:"week"`
	From int `json:"from"`
	To   int `json:"to"`
	Days int `json:"days"`
}

type MonthBucket struct {
	Month time.Month `json:"month"`
	Days  int        `json:"days"`
}

func MonthlyDrinkingDays(records []models.DrinkRecord, year int, month time.Month) int {
	return DrinkingDays(ForMonth(records, year, month))
}

// DrinkingDatesForMonth returns the sorted days of month with a drink.
func DrinkingDatesForMonth(records []models.DrinkRecord, year int, month time.Month) []int {
	return daysOfMonth(ForMonth(records, year, month), true)
}

// SoberDatesForMonth returns the sorted days of month recorded as sober.
func SoberDatesForMonth(records []models.DrinkRecord, year int, month time.Month) []int {
	return daysOfMonth(ForMonth(records, year, month), false)
}

func daysOfMonth(records []models.DrinkRecord, drank bool) []int {
	seen := make(map[int]struct{})
	days := make([]int, 0)
	for _, r := range records {
		if r.Drank != drank || len(r.Date) != 10 {
			continue
		}
		day, err := strconv.Atoi(r.Date[8:])
		if err != nil {
			continue
		}
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

func MonthlyEstimatedCost(records []models.DrinkRecord, settings models.AppSettings, year int, month time.Month) int64 {
	return EstimatedCost(ForMonth(records, year, month), settings)
}

func MonthlyDrinkAmount(records []models.DrinkRecord, year int, month time.Month) Amount {
	return DrinkAmount(ForMonth(records, year, month))
}

// MonthComparison is this month's drinking days minus the previous month's.
func MonthComparison(records []models.DrinkRecord, year int, month time.Month) int {
	prevYear, prevMonth := PreviousMonth(year, month)
	return MonthlyDrinkingDays(records, year, month) - MonthlyDrinkingDays(records, prevYear, prevMonth)
}

func MonthlyCostComparison(records []models.DrinkRecord, settings models.AppSettings, year int, month time.Month) int64 {
	prevYear, prevMonth := PreviousMonth(year, month)
	return MonthlyEstimatedCost(records, settings, year, month) - MonthlyEstimatedCost(records, settings, prevYear, prevMonth)
}

// WeeklyBreakdown splits a month into days 1-7, 8-14, 15-21 and 22 to the
// end of the month, regardless of where calendar weeks start.
func WeeklyBreakdown(records []models.DrinkRecord, year int, month time.Month) []WeekBucket {
	drinking := make(map[int]struct{})
	for _, d := range DrinkingDatesForMonth(records, year, month) {
		drinking[d] = struct{}{}
	}
	last := calendar.DaysInMonth(year, month)

	buckets := make([]WeekBucket, 0, 4)
	for w := 0; w < 4; w++ {
		b := WeekBucket{Week: w + 1, From: w*7 + 1, To: (w + 1) * 7}
		if w == 3 {
			b.To = last
		}
		for d := b.From; d <= b.To; d++ {
			if _, ok := drinking[d]; ok {
				b.Days++
			}
		}
		buckets = append(buckets, b)
	}
	return buckets
}

// YearlyBreakdown lists drinking days per month. For the current year it
// stops at the current month.
func YearlyBreakdown(records []models.DrinkRecord, year int, today calendar.Date) []MonthBucket {
	last := time.December
	if year == today.Year {
		last = today.Month
	}
	result := make([]MonthBucket, 0, int(last))
	for m := time.January; m <= last; m++ {
		result = append(result, MonthBucket{Month: m, Days: MonthlyDrinkingDays(records, year, m)})
	}
	return result
}

func YearlyDrinkingDays(records []models.DrinkRecord, year int) int {
	return DrinkingDays(ForYear(records, year))
}

func YearlyEstimatedCost(records []models.DrinkRecord, settings models.AppSettings, year int) int64 {
	return EstimatedCost(ForYear(records, year), settings)
}

func YearlyDrinkAmount(records []models.DrinkRecord, year int) Amount {
	return DrinkAmount(ForYear(records, year))
}

func YearComparison(records []models.DrinkRecord, year int) int {
	return YearlyDrinkingDays(records, year) - YearlyDrinkingDays(records, year-1)
}

func YearlyCostComparison(records []models.DrinkRecord, settings models.AppSettings, year int) int64 {
	return YearlyEstimatedCost(records, settings, year) - YearlyEstimatedCost(records, settings, year-1)
}
