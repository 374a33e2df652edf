package providers

import (
	"drinkdays/internal/calendar"
	"drinkdays/internal/structures"
)

// NewHolidayProvider returns the embedded holiday table unless the config
// points at a replacement file.
func NewHolidayProvider(conf *structures.Config, logger Logger) (*calendar.HolidayTable, error) {
	if conf.Calendar.HolidaysFile == "" {
		return calendar.DefaultHolidayTable()
	}
	table, err := calendar.LoadHolidayTable(conf.Calendar.HolidaysFile)
	if err != nil {
		return nil, err
	}
	logger.Infof(TypeApp, "Loaded holiday table from %s covering lunar years %v", conf.Calendar.HolidaysFile, table.Years())
	return table, nil
}
