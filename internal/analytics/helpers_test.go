package analytics

import (
	"time"

	"drinkdays/internal/calendar"
	"drinkdays/internal/models"
)

func sober(date string) models.DrinkRecord {
	return models.DrinkRecord{ID: "id-" + date, Date: date}
}

func drank(date string, amount float64, unit models.Unit) models.DrinkRecord {
	return models.DrinkRecord{ID: "id-" + date, Date: date, Drank: true, Amount: amount, Unit: unit}
}

func day(year int, month time.Month, d int) calendar.Date {
	return calendar.Date{Year: year, Month: month, Day: d}
}

func testSettings(price float64, ratio int) models.AppSettings {
	return models.AppSettings{
		BottlePrice:      price,
		GlassesPerBottle: ratio,
		Language:         models.LanguageKorean,
		Currency:         models.CurrencyKRW,
	}
}
