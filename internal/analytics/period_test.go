package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drinkdays/internal/models"
)

func TestForMonth_PrefixDoesNotLeak(t *testing.T) {
	records := []models.DrinkRecord{
		sober("2024-01-31"),
		sober("2024-10-01"),
		sober("2024-11-05"),
		sober("2023-01-15"),
	}
	scoped := ForMonth(records, 2024, time.January)
	require.Len(t, scoped, 1)
	assert.Equal(t, "2024-01-31", scoped[0].Date)

	assert.Len(t, ForYear(records, 2024), 3)
}

func TestMonthlyDrinkingDays(t *testing.T) {
	records := []models.DrinkRecord{
		drank("2024-03-01", 1, models.UnitGlass),
		drank("2024-03-15", 1, models.UnitBottle),
		sober("2024-03-16"),
		drank("2024-04-01", 1, models.UnitGlass),
	}
	assert.Equal(t, 2, MonthlyDrinkingDays(records, 2024, time.March))
	assert.Equal(t, 0, MonthlyDrinkingDays(records, 2024, time.May))
	assert.Equal(t, []int{1, 15}, DrinkingDatesForMonth(records, 2024, time.March))
	assert.Equal(t, []int{16}, SoberDatesForMonth(records, 2024, time.March))
}

func TestMonthComparison_RollsOverJanuary(t *testing.T) {
	records := []models.DrinkRecord{
		drank("2023-12-01", 1, models.UnitGlass),
		drank("2023-12-02", 1, models.UnitGlass),
		drank("2023-12-03", 1, models.UnitGlass),
		drank("2024-01-10", 7, models.UnitGlass),
	}
	assert.Equal(t, -2, MonthComparison(records, 2024, time.January))
	assert.Equal(t, int64(2000-857), MonthlyCostComparison(records, testSettings(2000, 7), 2024, time.January))
}

func TestPreviousMonth(t *testing.T) {
	y, m := PreviousMonth(2024, time.January)
	assert.Equal(t, 2023, y)
	assert.Equal(t, time.December, m)

	y, m = PreviousMonth(2024, time.July)
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.June, m)
}

func TestWeeklyBreakdown_ThirtyOneDayMonth(t *testing.T) {
	records := []models.DrinkRecord{
		drank("2024-01-01", 1, models.UnitGlass),
		drank("2024-01-07", 1, models.UnitGlass),
		drank("2024-01-08", 1, models.UnitGlass),
		drank("2024-01-22", 1, models.UnitGlass),
		drank("2024-01-31", 1, models.UnitGlass),
		sober("2024-01-30"),
	}
	buckets := WeeklyBreakdown(records, 2024, time.January)
	require.Len(t, buckets, 4)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 7, buckets[i].To-buckets[i].From+1)
	}
	assert.Equal(t, 22, buckets[3].From)
	assert.Equal(t, 31, buckets[3].To)

	assert.Equal(t, []int{2, 1, 0, 2}, []int{buckets[0].Days, buckets[1].Days, buckets[2].Days, buckets[3].Days})
}

func TestWeeklyBreakdown_February(t *testing.T) {
	buckets := WeeklyBreakdown(nil, 2023, time.February)
	assert.Equal(t, 28, buckets[3].To)
	for _, b := range buckets {
		assert.Equal(t, 0, b.Days)
	}
}

func TestYearlyBreakdown_StopsAtCurrentMonth(t *testing.T) {
	records := []models.DrinkRecord{
		drank("2024-02-03", 1, models.UnitGlass),
		drank("2024-02-04", 1, models.UnitGlass),
	}
	current := YearlyBreakdown(records, 2024, day(2024, time.March, 10))
	require.Len(t, current, 3)
	assert.Equal(t, MonthBucket{Month: time.February, Days: 2}, current[1])

	past := YearlyBreakdown(records, 2023, day(2024, time.March, 10))
	assert.Len(t, past, 12)
}

func TestYearlyTotals(t *testing.T) {
	records := []models.DrinkRecord{
		drank("2023-06-01", 1, models.UnitBottle),
		drank("2024-02-03", 2, models.UnitBottle),
		drank("2024-05-04", 14, models.UnitGlass),
		sober("2024-05-05"),
	}
	settings := testSettings(2000, 7)
	assert.Equal(t, 2, YearlyDrinkingDays(records, 2024))
	assert.Equal(t, int64(8000), YearlyEstimatedCost(records, settings, 2024))
	assert.Equal(t, int64(6000), YearlyCostComparison(records, settings, 2024))
	assert.Equal(t, 1, YearComparison(records, 2024))
	assert.Equal(t, Amount{Bottles: 2, Glasses: 14}, YearlyDrinkAmount(records, 2024))
}

func TestEmptyScopesAreZero(t *testing.T) {
	settings := testSettings(2000, 7)
	assert.Equal(t, 0, MonthlyDrinkingDays(nil, 2024, time.January))
	assert.Equal(t, 0, YearlyDrinkingDays(nil, 2024))
	assert.Equal(t, int64(0), MonthlyEstimatedCost(nil, settings, 2024, time.January))
	assert.Equal(t, 0, MonthlySoberRate(nil, 2024, time.January))
	assert.Equal(t, 0, YearlySoberRate(nil, 2024))
	assert.Equal(t, Amount{}, MonthlyDrinkAmount(nil, 2024, time.January))
}
