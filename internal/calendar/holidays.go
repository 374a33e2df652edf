package calendar

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"time"

	json "github.com/goccy/go-json"
)

//go:embed holidays.json
var defaultHolidays []byte

// Holiday is one row of the holiday table. Month is 1-based.
type Holiday struct {
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
	Name  string     `json:"name"`
}

// HolidayTable is the union of holidays fixed to the solar calendar and a
// per-year list of lunar holidays already converted to solar dates. Years
// missing from Lunar only get the fixed holidays: supporting a new year
// means adding rows to the asset.
type HolidayTable struct {
	Fixed []Holiday         `json:"fixed"`
	Lunar map[int][]Holiday `json:"lunar"`
}

// DefaultHolidayTable returns the table embedded in the binary.
func DefaultHolidayTable() (*HolidayTable, error) {
	return ParseHolidayTable(defaultHolidays)
}

// LoadHolidayTable reads a replacement table from disk.
func LoadHolidayTable(path string) (*HolidayTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseHolidayTable(data)
}

func ParseHolidayTable(data []byte) (*HolidayTable, error) {
	var table HolidayTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("decode holiday table: %w", err)
	}
	for _, h := range table.Fixed {
		if err := h.check(); err != nil {
			return nil, err
		}
	}
	for year, rows := range table.Lunar {
		for _, h := range rows {
			if err := h.check(); err != nil {
				return nil, fmt.Errorf("year %d: %w", year, err)
			}
		}
	}
	if table.Lunar == nil {
		table.Lunar = make(map[int][]Holiday)
	}
	return &table, nil
}

func (h Holiday) check() error {
	if h.Month < time.January || h.Month > time.December || h.Day < 1 || h.Day > 31 {
		return fmt.Errorf("holiday %q has invalid date %d/%d", h.Name, h.Month, h.Day)
	}
	return nil
}

// InMonth lists the holidays of a month, fixed rows first.
func (t *HolidayTable) InMonth(year int, month time.Month) []Holiday {
	var result []Holiday
	for _, h := range t.Fixed {
		if h.Month == month {
			result = append(result, h)
		}
	}
	for _, h := range t.Lunar[year] {
		if h.Month == month {
			result = append(result, h)
		}
	}
	return result
}

// ForMonth returns the sorted set of holiday days of a month.
func (t *HolidayTable) ForMonth(year int, month time.Month) []int {
	seen := make(map[int]struct{})
	days := make([]int, 0)
	for _, h := range t.InMonth(year, month) {
		if _, ok := seen[h.Day]; ok {
			continue
		}
		seen[h.Day] = struct{}{}
		days = append(days, h.Day)
	}
	sort.Ints(days)
	return days
}

// Years lists the years that have lunar rows.
func (t *HolidayTable) Years() []int {
	years := make([]int, 0, len(t.Lunar))
	for y := range t.Lunar {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
