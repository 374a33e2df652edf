package services

import (
	"drinkdays/internal/analytics"
	"drinkdays/internal/calendar"
	"drinkdays/internal/models"
	"drinkdays/internal/providers"
	"drinkdays/internal/storage"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrInvalidQuery = errors.New("invalid query")
)

// Offsets further than this from the current week are rejected.
const maxWeekOffset = 5200

type JournalServiceInterface interface {
	Restore() error
	SaveRecord(input models.RecordInput) (models.DrinkRecord, error)
	GetRecord(date string) (models.DrinkRecord, error)
	Records(prefix string) []models.DrinkRecord
	Settings() models.AppSettings
	UpdateSettings(patch models.SettingsPatch) (models.AppSettings, error)
	MonthSummary(year int, month time.Month) (MonthStats, error)
	YearSummary(year int) (YearStats, error)
	WeekSummary(offset int) (WeekStats, error)
	Streaks() (StreakStats, error)
	Weekdays() (WeekdayStats, error)
	CalendarMonth(year int, month time.Month) (MonthCalendar, error)
	Len() int
	ReadOnly() bool
}

type JournalService struct {
	records  *storage.RecordStore
	settings *storage.SettingsStore
	holidays *calendar.HolidayTable
	cache    providers.CacheProviderInterface
	metrics  providers.MetricsProviderInterface
	logger   providers.Logger
	group    singleflight.Group
	now      func() time.Time
}

func NewJournalService(
	records *storage.RecordStore,
	settings *storage.SettingsStore,
	holidays *calendar.HolidayTable,
	cache providers.CacheProviderInterface,
	metrics providers.MetricsProviderInterface,
	logger providers.Logger,
) *JournalService {
	return &JournalService{
		records:  records,
		settings: settings,
		holidays: holidays,
		cache:    cache,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
	}
}

// Restore loads both stores. Unreadable settings fall back to defaults and
// only the records error is returned: with it the journal stays read-only.
func (js *JournalService) Restore() error {
	if _, err := js.settings.Load(); err != nil {
		js.logger.Warnf(providers.TypeApp, "Settings not restored, using defaults: %s", err)
	}

	records, err := js.records.Load()
	if err != nil {
		js.logger.Errorf(providers.TypeApp, "Journal not restored: %s", err)
		return err
	}
	js.logger.Infof(providers.TypeApp, "Journal restored with %d records", len(records))
	return nil
}

func (js *JournalService) SaveRecord(input models.RecordInput) (models.DrinkRecord, error) {
	start := time.Now()
	rec, err := js.records.Upsert(input)
	js.observePersist("records", start, err)
	if err != nil {
		return rec, err
	}
	js.logger.Infof(providers.TypePost, "Record saved for %s (drank=%t)", rec.Date, rec.Drank)
	return rec, nil
}

func (js *JournalService) UpdateSettings(patch models.SettingsPatch) (models.AppSettings, error) {
	start := time.Now()
	settings, err := js.settings.Update(patch)
	js.observePersist("settings", start, err)
	if err != nil {
		return settings, err
	}
	js.logger.Infof(providers.TypePost, "Settings updated: %s, %d glasses per bottle", settings.Currency, settings.GlassesPerBottle)
	return settings, nil
}

// observePersist only counts calls that reached the key-value store.
func (js *JournalService) observePersist(store string, start time.Time, err error) {
	switch {
	case err == nil:
		js.metrics.ObservePersistenceDuration(store, time.Since(start))
	case errors.Is(err, storage.ErrPersistFailed):
		js.metrics.ObservePersistenceDuration(store, time.Since(start))
		js.metrics.IncPersistenceFailures(store)
		js.logger.Errorf(providers.TypeApp, "Persisting %s failed: %s", store, err)
	}
}

func (js *JournalService) GetRecord(date string) (models.DrinkRecord, error) {
	if _, err := calendar.ParseDateKey(date); err != nil {
		return models.DrinkRecord{}, err
	}
	rec, ok := js.records.Get(date)
	if !ok {
		return models.DrinkRecord{}, fmt.Errorf("%w: %s", ErrNotFound, date)
	}
	return rec, nil
}

// Records returns the records whose date starts with prefix, sorted by
// date. An empty prefix returns the whole journal.
func (js *JournalService) Records(prefix string) []models.DrinkRecord {
	snapshot, _ := js.records.Snapshot()
	out := make([]models.DrinkRecord, 0, len(snapshot))
	for _, r := range snapshot {
		if strings.HasPrefix(r.Date, prefix) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func (js *JournalService) Settings() models.AppSettings {
	return js.settings.Get()
}

func (js *JournalService) Len() int {
	return js.records.Len()
}

func (js *JournalService) ReadOnly() bool {
	return js.records.ReadOnly()
}

func (js *JournalService) today() calendar.Date {
	return calendar.Today(js.now())
}

// view is one consistent read: a records snapshot, the settings and the
// versions both belong to.
type view struct {
	records         []models.DrinkRecord
	settings        models.AppSettings
	recordsVersion  uint64
	settingsVersion uint64
}

func (js *JournalService) view() view {
	records, rv := js.records.Snapshot()
	settings, sv := js.settings.Snapshot()
	return view{records: records, settings: settings, recordsVersion: rv, settingsVersion: sv}
}

func (v view) key(query, params string) string {
	return memoKey(query, v.recordsVersion, v.settingsVersion, params)
}

func checkYear(year int) error {
	if year < 1 || year > 9999 {
		return fmt.Errorf("%w: year %d", ErrInvalidQuery, year)
	}
	return nil
}

func checkMonth(year int, month time.Month) error {
	if err := checkYear(year); err != nil {
		return err
	}
	if month < time.January || month > time.December {
		return fmt.Errorf("%w: month %d", ErrInvalidQuery, month)
	}
	return nil
}

func (js *JournalService) MonthSummary(year int, month time.Month) (MonthStats, error) {
	if err := checkMonth(year, month); err != nil {
		return MonthStats{}, err
	}
	v := js.view()
	return memoize(js, v.key("month", calendar.MonthPrefix(year, month)), func() MonthStats {
		return MonthStats{
			Year:              year,
			Month:             month,
			DrinkingDays:      analytics.MonthlyDrinkingDays(v.records, year, month),
			DrinkingDaysDelta: analytics.MonthComparison(v.records, year, month),
			SoberRate:         analytics.MonthlySoberRate(v.records, year, month),
			Cost:              analytics.MonthlyEstimatedCost(v.records, v.settings, year, month),
			CostDelta:         analytics.MonthlyCostComparison(v.records, v.settings, year, month),
			Currency:          v.settings.Currency,
			Amount:            analytics.MonthlyDrinkAmount(v.records, year, month),
			DrinkingDates:     analytics.DrinkingDatesForMonth(v.records, year, month),
			SoberDates:        analytics.SoberDatesForMonth(v.records, year, month),
			Weeks:             analytics.WeeklyBreakdown(v.records, year, month),
		}
	})
}

// YearSummary depends on today because the monthly breakdown of the
// current year stops at the current month.
func (js *JournalService) YearSummary(year int) (YearStats, error) {
	if err := checkYear(year); err != nil {
		return YearStats{}, err
	}
	v := js.view()
	today := js.today()
	params := strconv.Itoa(year)
	if year == today.Year {
		params += ":" + calendar.MonthPrefix(today.Year, today.Month)
	}
	return memoize(js, v.key("year", params), func() YearStats {
		return YearStats{
			Year:              year,
			DrinkingDays:      analytics.YearlyDrinkingDays(v.records, year),
			DrinkingDaysDelta: analytics.YearComparison(v.records, year),
			SoberRate:         analytics.YearlySoberRate(v.records, year),
			Cost:              analytics.YearlyEstimatedCost(v.records, v.settings, year),
			CostDelta:         analytics.YearlyCostComparison(v.records, v.settings, year),
			Currency:          v.settings.Currency,
			Amount:            analytics.YearlyDrinkAmount(v.records, year),
			Months:            analytics.YearlyBreakdown(v.records, year, today),
		}
	})
}

func (js *JournalService) WeekSummary(offset int) (WeekStats, error) {
	if offset < -maxWeekOffset || offset > maxWeekOffset {
		return WeekStats{}, fmt.Errorf("%w: week offset %d", ErrInvalidQuery, offset)
	}
	v := js.view()
	today := js.today()
	return memoize(js, v.key("week", fmt.Sprintf("%d:%s", offset, today.Key())), func() WeekStats {
		return WeekStats{
			Offset:            offset,
			Label:             analytics.WeekLabel(today, offset),
			Days:              analytics.WeekBreakdownByOffset(v.records, today, offset),
			DrinkingDays:      analytics.WeekDrinkingDaysByOffset(v.records, today, offset),
			DrinkingDaysDelta: analytics.WeekComparison(v.records, today, offset),
			SoberRate:         analytics.WeeklySoberRate(v.records, today, offset),
			Cost:              analytics.WeeklyEstimatedCost(v.records, v.settings, today, offset),
			CostDelta:         analytics.WeeklyCostComparison(v.records, v.settings, today, offset),
			Currency:          v.settings.Currency,
			Amount:            analytics.WeeklyDrinkAmount(v.records, today, offset),
		}
	})
}

func (js *JournalService) Streaks() (StreakStats, error) {
	v := js.view()
	today := js.today()
	return memoize(js, v.key("streaks", today.Key()), func() StreakStats {
		return StreakStats{
			Today:   today.Key(),
			Current: analytics.CurrentSoberStreak(v.records, today),
			Longest: analytics.LongestSoberStreak(v.records),
		}
	})
}

func (js *JournalService) Weekdays() (WeekdayStats, error) {
	v := js.view()
	return memoize(js, v.key("weekdays", "all"), func() WeekdayStats {
		stats := WeekdayStats{Pattern: analytics.DayOfWeekPattern(v.records)}
		if fav, ok := analytics.FavoriteDrinkingDay(v.records); ok {
			stats.Favorite = &fav
		}
		return stats
	})
}

func (js *JournalService) CalendarMonth(year int, month time.Month) (MonthCalendar, error) {
	if err := checkMonth(year, month); err != nil {
		return MonthCalendar{}, err
	}
	v := js.view()
	return memoize(js, v.key("calendar", calendar.MonthPrefix(year, month)), func() MonthCalendar {
		return MonthCalendar{
			Year:         year,
			Month:        month,
			DaysInMonth:  calendar.DaysInMonth(year, month),
			FirstWeekday: calendar.WeekdayOf(year, month, 1),
			Drinking:     analytics.DrinkingDatesForMonth(v.records, year, month),
			Sober:        analytics.SoberDatesForMonth(v.records, year, month),
			Holidays:     js.holidays.ForMonth(year, month),
		}
	})
}
