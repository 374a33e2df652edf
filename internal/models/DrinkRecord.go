package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gookit/validate"

	"drinkdays/internal/calendar"
)

var ErrInvalidRecord = errors.New("invalid record")

type Unit string

const (
	UnitGlass  Unit = "glass"
	UnitBottle Unit = "bottle"
)

// Spellings written by the first releases of the app.
var legacyUnits = map[string]Unit{
	"잔": UnitGlass,
	"병": UnitBottle,
}

func ParseUnit(s string) (Unit, error) {
	switch u := Unit(s); u {
	case UnitGlass, UnitBottle:
		return u, nil
	}
	if u, ok := legacyUnits[s]; ok {
		return u, nil
	}
	return "", fmt.Errorf("%w: unknown unit %q", ErrInvalidRecord, s)
}

// UnmarshalJSON maps legacy spellings onto the canonical units. Unknown
// values are kept verbatim and counted as glasses, like the app always did.
func (u *Unit) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if legacy, ok := legacyUnits[s]; ok {
		*u = legacy
		return nil
	}
	*u = Unit(s)
	return nil
}

// DrinkRecord is one day of the journal. Date is the natural key.
type DrinkRecord struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Drank     bool      `json:"drank"`
	Amount    float64   `json:"amount,omitempty"`
	Unit      Unit      `json:"unit,omitempty"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasAmount reports whether the record contributes to drink totals.
func (r DrinkRecord) HasAmount() bool {
	return r.Drank && r.Amount > 0
}

func (r DrinkRecord) IsBottle() bool {
	return r.Unit == UnitBottle
}

// RecordInput is a record as submitted by the user, before the store
// assigns an id and timestamps.
type RecordInput struct {
	Date   string  `json:"date" validate:"required|dateKey"`
	Drank  bool    `json:"drank"`
	Amount float64 `json:"amount,omitempty" validate:"min:0"`
	Unit   string  `json:"unit,omitempty" validate:"in:glass,bottle,잔,병"`
	Note   string  `json:"note,omitempty" validate:"maxLen:500"`
}

func init() {
	validate.AddValidator("dateKey", func(val any) bool {
		s, ok := val.(string)
		return ok && calendar.IsDateKey(s)
	})
}

func (in RecordInput) Validate() error {
	v := validate.Struct(&in)
	if !v.Validate() {
		return fmt.Errorf("%w: %s", ErrInvalidRecord, v.Errors.One())
	}
	return nil
}

// ToRecord validates the input and builds the record body. Amount and unit
// are only kept on drinking days; a drinking day with an amount but no unit
// is counted in glasses.
func (in RecordInput) ToRecord() (DrinkRecord, error) {
	if err := in.Validate(); err != nil {
		return DrinkRecord{}, err
	}
	rec := DrinkRecord{
		Date:  in.Date,
		Drank: in.Drank,
		Note:  strings.TrimSpace(in.Note),
	}
	if in.Drank && in.Amount > 0 {
		rec.Amount = in.Amount
		rec.Unit = UnitGlass
		if in.Unit != "" {
			unit, err := ParseUnit(in.Unit)
			if err != nil {
				return DrinkRecord{}, err
			}
			rec.Unit = unit
		}
	}
	return rec, nil
}
