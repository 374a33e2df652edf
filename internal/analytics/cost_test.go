package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"drinkdays/internal/models"
)

func TestEstimatedCost_SevenGlassesIsOneBottle(t *testing.T) {
	records := []models.DrinkRecord{drank("2024-01-01", 7, models.UnitGlass)}
	assert.Equal(t, int64(2000), EstimatedCost(records, testSettings(2000, 7)))
}

func TestEstimatedCost_RoundsToNearest(t *testing.T) {
	records := []models.DrinkRecord{drank("2024-01-01", 10, models.UnitGlass)}
	assert.Equal(t, int64(2857), EstimatedCost(records, testSettings(2000, 7)))
}

func TestEstimatedCost_MixedUnits(t *testing.T) {
	records := []models.DrinkRecord{
		drank("2024-01-01", 2, models.UnitBottle),
		drank("2024-01-02", 1, models.UnitGlass),
		drank("2024-01-03", 6, models.UnitGlass),
		sober("2024-01-04"),
	}
	// 2 bottles + 7 glasses = 3 bottles
	assert.Equal(t, int64(6000), EstimatedCost(records, testSettings(2000, 7)))
}

func TestEstimatedCost_UsesCurrentRatio(t *testing.T) {
	records := []models.DrinkRecord{drank("2024-01-01", 10, models.UnitGlass)}
	assert.Equal(t, int64(4000), EstimatedCost(records, testSettings(2000, 5)))
}

func TestEstimatedCost_FractionalPrice(t *testing.T) {
	records := []models.DrinkRecord{drank("2024-01-01", 3, models.UnitBottle)}
	assert.Equal(t, int64(8), EstimatedCost(records, testSettings(2.5, 7)))
}

func TestEstimatedCost_IgnoresMissingAmounts(t *testing.T) {
	records := []models.DrinkRecord{
		{ID: "x", Date: "2024-01-01", Drank: true},
		{ID: "y", Date: "2024-01-02", Drank: false, Amount: 3, Unit: models.UnitBottle},
	}
	assert.Equal(t, int64(0), EstimatedCost(records, testSettings(2000, 7)))
}

func TestEstimatedCost_Empty(t *testing.T) {
	assert.Equal(t, int64(0), EstimatedCost(nil, testSettings(2000, 7)))
}

func TestDrinkAmount_SplitsUnits(t *testing.T) {
	records := []models.DrinkRecord{
		drank("2024-01-01", 1.5, models.UnitBottle),
		drank("2024-01-02", 3, models.UnitGlass),
		drank("2024-01-03", 2, models.Unit("pint")),
	}
	assert.Equal(t, Amount{Bottles: 1.5, Glasses: 5}, DrinkAmount(records))
}
