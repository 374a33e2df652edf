package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drinkdays/internal/models"
)

func TestWeekDates_MondayAnchored(t *testing.T) {
	thursday := day(2024, time.January, 4)
	dates := WeekDates(thursday, 0)
	assert.Equal(t, "2024-01-01", dates[0].Key())
	assert.Equal(t, "2024-01-07", dates[6].Key())

	sunday := day(2024, time.January, 7)
	assert.Equal(t, dates, WeekDates(sunday, 0))
}

func TestWeekDates_Offsets(t *testing.T) {
	today := day(2024, time.January, 4)
	prev := WeekDates(today, -1)
	assert.Equal(t, "2023-12-25", prev[0].Key())
	assert.Equal(t, "2023-12-31", prev[6].Key())

	next := WeekDates(today, 1)
	assert.Equal(t, "2024-01-08", next[0].Key())
}

func TestWeekLabel(t *testing.T) {
	today := day(2024, time.January, 4)
	assert.Equal(t, "1/1 ~ 1/7", WeekLabel(today, 0))
	assert.Equal(t, "12/25 ~ 12/31", WeekLabel(today, -1))
}

func TestWeekBreakdownByOffset(t *testing.T) {
	records := []models.DrinkRecord{
		drank("2024-01-02", 1, models.UnitGlass),
		sober("2024-01-03"),
		drank("2024-01-06", 1, models.UnitBottle),
	}
	days := WeekBreakdownByOffset(records, day(2024, time.January, 4), 0)
	require.Len(t, days, 7)

	drinking := make([]bool, 7)
	for i, d := range days {
		assert.Equal(t, i, d.Weekday)
		drinking[i] = d.Drank
	}
	assert.Equal(t, []bool{false, true, false, false, false, true, false}, drinking)
	assert.Equal(t, "2024-01-06", days[5].Date)
}

func TestWeeklyTotalsAndComparisons(t *testing.T) {
	records := []models.DrinkRecord{
		drank("2023-12-26", 7, models.UnitGlass),
		drank("2024-01-02", 1, models.UnitBottle),
		drank("2024-01-05", 7, models.UnitGlass),
		sober("2024-01-03"),
	}
	today := day(2024, time.January, 4)
	settings := testSettings(2000, 7)

	assert.Equal(t, 2, WeekDrinkingDaysByOffset(records, today, 0))
	assert.Equal(t, 1, WeekDrinkingDaysByOffset(records, today, -1))
	assert.Equal(t, 1, WeekComparison(records, today, 0))
	assert.Equal(t, int64(4000), WeeklyEstimatedCost(records, settings, today, 0))
	assert.Equal(t, int64(2000), WeeklyCostComparison(records, settings, today, 0))
	assert.Equal(t, Amount{Bottles: 1, Glasses: 7}, WeeklyDrinkAmount(records, today, 0))
	assert.Equal(t, 33, WeeklySoberRate(records, today, 0))
	assert.Equal(t, 0, WeeklySoberRate(records, today, 3))
}
