package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gookit/validate"
)

var ErrInvalidSettings = errors.New("invalid settings")

type Language string

const (
	LanguageKorean  Language = "ko"
	LanguageEnglish Language = "en"
)

type Currency string

const (
	CurrencyKRW Currency = "KRW"
	CurrencyUSD Currency = "USD"
)

const DefaultGlassesPerBottle = 7

type AppSettings struct {
	BottlePrice      float64  `json:"bottlePrice"`
	GlassesPerBottle int      `json:"glassesPerBottle"`
	Language         Language `json:"language"`
	Currency         Currency `json:"currency"`
}

// SettingsPatch is a partial update; nil fields are left untouched.
type SettingsPatch struct {
	BottlePrice      *float64  `json:"bottlePrice,omitempty"`
	GlassesPerBottle *int      `json:"glassesPerBottle,omitempty"`
	Language         *Language `json:"language,omitempty"`
	Currency         *Currency `json:"currency,omitempty"`
}

type settingsForm struct {
	BottlePrice      float64 `validate:"required|gt:0"`
	GlassesPerBottle int     `validate:"required|int|min:1"`
	Language         string  `validate:"required|in:ko,en"`
	Currency         string  `validate:"required|in:KRW,USD"`
}

func DefaultBottlePrice(c Currency) float64 {
	if c == CurrencyUSD {
		return 2
	}
	return 2000
}

// DefaultSettings derives the first-run settings from a locale such as
// "ko_KR.UTF-8" or "en-US".
func DefaultSettings(locale string) AppSettings {
	lang, currency := LanguageEnglish, CurrencyUSD
	if strings.HasPrefix(strings.ToLower(locale), "ko") {
		lang, currency = LanguageKorean, CurrencyKRW
	}
	return AppSettings{
		BottlePrice:      DefaultBottlePrice(currency),
		GlassesPerBottle: DefaultGlassesPerBottle,
		Language:         lang,
		Currency:         currency,
	}
}

func (s AppSettings) Validate() error {
	v := validate.Struct(&settingsForm{
		BottlePrice:      s.BottlePrice,
		GlassesPerBottle: s.GlassesPerBottle,
		Language:         string(s.Language),
		Currency:         string(s.Currency),
	})
	if !v.Validate() {
		return fmt.Errorf("%w: %s", ErrInvalidSettings, v.Errors.One())
	}
	return nil
}

// Apply merges a patch. Switching currency without a price resets the
// price to that currency's default.
func (s AppSettings) Apply(p SettingsPatch) AppSettings {
	next := s
	if p.Currency != nil && *p.Currency != s.Currency {
		next.Currency = *p.Currency
		if p.BottlePrice == nil {
			next.BottlePrice = DefaultBottlePrice(next.Currency)
		}
	}
	if p.BottlePrice != nil {
		next.BottlePrice = *p.BottlePrice
	}
	if p.GlassesPerBottle != nil {
		next.GlassesPerBottle = *p.GlassesPerBottle
	}
	if p.Language != nil {
		next.Language = *p.Language
	}
	return next
}

// Sanitize replaces every field that fails validation with its default.
func (s AppSettings) Sanitize(defaults AppSettings) AppSettings {
	result := defaults

	candidate := defaults
	candidate.BottlePrice = s.BottlePrice
	if candidate.Validate() == nil {
		result.BottlePrice = s.BottlePrice
	}
	candidate = defaults
	candidate.GlassesPerBottle = s.GlassesPerBottle
	if candidate.Validate() == nil {
		result.GlassesPerBottle = s.GlassesPerBottle
	}
	candidate = defaults
	candidate.Language = s.Language
	if candidate.Validate() == nil {
		result.Language = s.Language
	}
	candidate = defaults
	candidate.Currency = s.Currency
	if candidate.Validate() == nil {
		result.Currency = s.Currency
	}
	return result
}
