package analytics

import (
	"github.com/shopspring/decimal"

	"drinkdays/internal/models"
)

// Amount is the raw drink quantity of a scope, split by unit.
type Amount struct {
	Bottles float64 `json:"bottles"`
	Glasses float64 `json:"glasses"`
}

// DrinkAmount sums amounts of drinking days. Anything that is not a bottle
// counts as glasses.
func DrinkAmount(records []models.DrinkRecord) Amount {
	bottles, glasses := decimal.Zero, decimal.Zero
	for _, r := range records {
		if !r.HasAmount() {
			continue
		}
		if r.IsBottle() {
			bottles = bottles.Add(decimal.NewFromFloat(r.Amount))
		} else {
			glasses = glasses.Add(decimal.NewFromFloat(r.Amount))
		}
	}
	return Amount{Bottles: bottles.InexactFloat64(), Glasses: glasses.InexactFloat64()}
}

// BottleEquivalents converts glasses with the given ratio. The ratio is the
// one configured now, not the one in force when a record was written.
func (a Amount) BottleEquivalents(glassesPerBottle int) decimal.Decimal {
	total := decimal.NewFromFloat(a.Bottles)
	if glassesPerBottle > 0 {
		glasses := decimal.NewFromFloat(a.Glasses)
		total = total.Add(glasses.Div(decimal.NewFromInt(int64(glassesPerBottle))))
	}
	return total
}

// Cost prices the amount and rounds to the nearest whole currency unit.
func (a Amount) Cost(settings models.AppSettings) int64 {
	price := decimal.NewFromFloat(settings.BottlePrice)
	return a.BottleEquivalents(settings.GlassesPerBottle).Mul(price).Round(0).IntPart()
}

// EstimatedCost prices every drinking day of the scope.
func EstimatedCost(records []models.DrinkRecord, settings models.AppSettings) int64 {
	return DrinkAmount(records).Cost(settings)
}
