package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings_Korean(t *testing.T) {
	s := DefaultSettings("ko_KR.UTF-8")
	assert.Equal(t, AppSettings{BottlePrice: 2000, GlassesPerBottle: 7, Language: LanguageKorean, Currency: CurrencyKRW}, s)
}

func TestDefaultSettings_OtherLocales(t *testing.T) {
	for _, locale := range []string{"en_US.UTF-8", "de-DE", ""} {
		s := DefaultSettings(locale)
		assert.Equal(t, AppSettings{BottlePrice: 2, GlassesPerBottle: 7, Language: LanguageEnglish, Currency: CurrencyUSD}, s, locale)
	}
}

func TestAppSettings_Validate(t *testing.T) {
	assert.NoError(t, DefaultSettings("ko").Validate())

	bad := DefaultSettings("ko")
	bad.BottlePrice = 0
	assert.ErrorIs(t, bad.Validate(), ErrInvalidSettings)

	bad = DefaultSettings("ko")
	bad.BottlePrice = -5
	assert.ErrorIs(t, bad.Validate(), ErrInvalidSettings)

	bad = DefaultSettings("ko")
	bad.GlassesPerBottle = 0
	assert.ErrorIs(t, bad.Validate(), ErrInvalidSettings)

	bad = DefaultSettings("ko")
	bad.Language = "fr"
	assert.ErrorIs(t, bad.Validate(), ErrInvalidSettings)

	bad = DefaultSettings("ko")
	bad.Currency = "EUR"
	assert.ErrorIs(t, bad.Validate(), ErrInvalidSettings)
}

func TestAppSettings_ApplyPartial(t *testing.T) {
	price := 3500.0
	next := DefaultSettings("ko").Apply(SettingsPatch{BottlePrice: &price})
	assert.Equal(t, 3500.0, next.BottlePrice)
	assert.Equal(t, 7, next.GlassesPerBottle)
	assert.Equal(t, CurrencyKRW, next.Currency)
}

func TestAppSettings_CurrencySwitchResetsPrice(t *testing.T) {
	usd := CurrencyUSD
	next := DefaultSettings("ko").Apply(SettingsPatch{Currency: &usd})
	assert.Equal(t, CurrencyUSD, next.Currency)
	assert.Equal(t, 2.0, next.BottlePrice)

	price := 4.5
	next = DefaultSettings("ko").Apply(SettingsPatch{Currency: &usd, BottlePrice: &price})
	assert.Equal(t, 4.5, next.BottlePrice)
}

func TestAppSettings_SameCurrencyKeepsPrice(t *testing.T) {
	krw := CurrencyKRW
	base := DefaultSettings("ko")
	base.BottlePrice = 1800
	next := base.Apply(SettingsPatch{Currency: &krw})
	assert.Equal(t, 1800.0, next.BottlePrice)
}

func TestAppSettings_Sanitize(t *testing.T) {
	defaults := DefaultSettings("ko")
	stored := AppSettings{BottlePrice: -1, GlassesPerBottle: 5, Language: "xx", Currency: CurrencyUSD}

	got := stored.Sanitize(defaults)
	assert.Equal(t, 2000.0, got.BottlePrice)
	assert.Equal(t, 5, got.GlassesPerBottle)
	assert.Equal(t, LanguageKorean, got.Language)
	assert.Equal(t, CurrencyUSD, got.Currency)
}
