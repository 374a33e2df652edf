package controllers

import (
	"drinkdays/internal/calendar"
	"drinkdays/internal/models"
	"drinkdays/internal/providers"
	"drinkdays/internal/services"
	"drinkdays/internal/storage"
	"errors"
	"fmt"
	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
	"net/http"
	"strings"
	"time"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	logger  providers.Logger
	service services.JournalServiceInterface
	now     func() time.Time
}

func NewApiController(logger providers.Logger, service services.JournalServiceInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		now:     time.Now,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidRecord),
		errors.Is(err, models.ErrInvalidSettings),
		errors.Is(err, calendar.ErrInvalidDateKey),
		errors.Is(err, services.ErrInvalidQuery):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrReadOnly):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (ac *ApiController) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	logType := providers.GetLogTypeByRequestType(r.Method)
	if status >= http.StatusInternalServerError {
		ac.logger.Errorf(logType, "%s %s: %s", r.Method, r.URL.Path, err)
		writeJSON(w, status, errorResponse{Error: http.StatusText(status)})
		return
	}
	ac.logger.Warnf(logType, "%s %s: %s", r.Method, r.URL.Path, err)
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (ac *ApiController) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		ac.logger.Warnf(providers.TypePost, "%s: undecodable body: %s", r.URL.Path, err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Bad Request"})
		return false
	}
	return true
}

// queryInt reads an integer parameter, falling back to def when absent.
// Leading zeros are decimal ("08" is August), not an octal prefix.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	digits := raw
	if len(digits) > 1 && digits[0] == '0' {
		digits = strings.TrimLeft(digits, "0")
		if digits == "" {
			digits = "0"
		}
	}
	n, err := cast.ToIntE(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", services.ErrInvalidQuery, name, raw)
	}
	return n, nil
}

// yearMonth reads year and month, defaulting to the current month.
func (ac *ApiController) yearMonth(r *http.Request) (int, time.Month, error) {
	today := calendar.Today(ac.now())
	year, err := queryInt(r, "year", today.Year)
	if err != nil {
		return 0, 0, err
	}
	month, err := queryInt(r, "month", int(today.Month))
	if err != nil {
		return 0, 0, err
	}
	return year, time.Month(month), nil
}

func (ac *ApiController) ListRecords(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.Records(r.URL.Query().Get("prefix")))
}

func (ac *ApiController) GetRecord(w http.ResponseWriter, r *http.Request) {
	rec, err := ac.service.GetRecord(r.URL.Query().Get("date"))
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (ac *ApiController) SaveRecord(w http.ResponseWriter, r *http.Request) {
	var input models.RecordInput
	if !ac.decode(w, r, &input) {
		return
	}
	rec, err := ac.service.SaveRecord(input)
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (ac *ApiController) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.Settings())
}

func (ac *ApiController) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var patch models.SettingsPatch
	if !ac.decode(w, r, &patch) {
		return
	}
	settings, err := ac.service.UpdateSettings(patch)
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (ac *ApiController) MonthStats(w http.ResponseWriter, r *http.Request) {
	year, month, err := ac.yearMonth(r)
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	stats, err := ac.service.MonthSummary(year, month)
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (ac *ApiController) YearStats(w http.ResponseWriter, r *http.Request) {
	year, err := queryInt(r, "year", calendar.Today(ac.now()).Year)
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	stats, err := ac.service.YearSummary(year)
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (ac *ApiController) WeekStats(w http.ResponseWriter, r *http.Request) {
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	stats, err := ac.service.WeekSummary(offset)
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (ac *ApiController) Streaks(w http.ResponseWriter, r *http.Request) {
	stats, err := ac.service.Streaks()
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (ac *ApiController) Weekdays(w http.ResponseWriter, r *http.Request) {
	stats, err := ac.service.Weekdays()
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (ac *ApiController) Calendar(w http.ResponseWriter, r *http.Request) {
	year, month, err := ac.yearMonth(r)
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	cal, err := ac.service.CalendarMonth(year, month)
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cal)
}
