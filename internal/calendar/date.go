// Package calendar holds the wall-clock date helpers shared by the record
// store and the aggregation engine. Dates are local calendar days: keys are
// never converted between time zones.
package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

var ErrInvalidDateKey = errors.New("invalid date key")

const secondsPerDay = 86400

// Date is a calendar day without a time of day or location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateKey formats the canonical zero-padded "YYYY-MM-DD" key.
func DateKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// MonthPrefix returns "YYYY-MM", a prefix of every key in that month.
func MonthPrefix(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// YearPrefix returns "YYYY", a prefix of every key in that year.
func YearPrefix(year int) string {
	return fmt.Sprintf("%04d", year)
}

// ParseDateKey is the strict inverse of DateKey.
func ParseDateKey(key string) (Date, error) {
	if len(key) != 10 || key[4] != '-' || key[7] != '-' {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
	}
	for i, c := range key {
		if i == 4 || i == 7 {
			continue
		}
		if c < '0' || c > '9' {
			return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
		}
	}
	year, _ := strconv.Atoi(key[0:4])
	month, _ := strconv.Atoi(key[5:7])
	day, _ := strconv.Atoi(key[8:10])
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("%w: month out of range in %q", ErrInvalidDateKey, key)
	}
	if day < 1 || day > DaysInMonth(year, time.Month(month)) {
		return Date{}, fmt.Errorf("%w: day out of range in %q", ErrInvalidDateKey, key)
	}
	return Date{Year: year, Month: time.Month(month), Day: day}, nil
}

// IsDateKey reports whether key is a valid canonical date key.
func IsDateKey(key string) bool {
	_, err := ParseDateKey(key)
	return err == nil
}

func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WeekdayOf returns the weekday of a date, Sunday = 0.
func WeekdayOf(year int, month time.Month, day int) time.Weekday {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()
}

// MondayIndex converts a Sunday-indexed weekday to Monday = 0 .. Sunday = 6.
func MondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// Today takes the wall-clock date of now in its own location.
func Today(now time.Time) Date {
	y, m, d := now.Date()
	return Date{Year: y, Month: m, Day: d}
}

// FromOrdinal is the inverse of Date.Ordinal.
func FromOrdinal(n int64) Date {
	return Today(time.Unix(n*secondsPerDay, 0).UTC())
}

func (d Date) Key() string {
	return DateKey(d.Year, d.Month, d.Day)
}

func (d Date) String() string {
	return d.Key()
}

// Ordinal counts whole days since 1970-01-01.
func (d Date) Ordinal() int64 {
	return d.midnight().Unix() / secondsPerDay
}

// AddDays normalizes overflow across months and years.
func (d Date) AddDays(n int) Date {
	return Today(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

func (d Date) Weekday() time.Weekday {
	return d.midnight().Weekday()
}

func (d Date) Before(other Date) bool {
	return d.Ordinal() < other.Ordinal()
}

func (d Date) midnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}
