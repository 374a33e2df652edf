package internal

import (
	"drinkdays/internal/calendar"
	"drinkdays/internal/controllers"
	"drinkdays/internal/services"
	"drinkdays/internal/storage"
	"drinkdays/internal/structures"
	"drinkdays/internal/testutil"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routeTestConfig() *structures.Config {
	return &structures.Config{
		AppName:   "DrinkDays",
		WebServer: structures.Server{Host: "127.0.0.1", Port: 0},
		Storage: structures.StorageConfig{
			RecordsKey:  "drinkdays_records",
			SettingsKey: "drinkdays_settings",
		},
		Settings: structures.SettingsConfig{Locale: "ko"},
	}
}

type routeFixture struct {
	app     *App
	journal *services.JournalService
	kv      *testutil.MemoryKV
	metrics *testutil.MockMetrics
}

func newRouteFixture(t *testing.T, kv *testutil.MemoryKV) *routeFixture {
	t.Helper()
	conf := routeTestConfig()
	logger := &testutil.MockLogger{}
	holidays, err := calendar.DefaultHolidayTable()
	require.NoError(t, err)
	metrics := testutil.NewMockMetrics()

	journal := services.NewJournalService(
		storage.NewRecordStore(conf, kv, logger),
		storage.NewSettingsStore(conf, kv, logger),
		holidays,
		testutil.NewMockCache(),
		metrics,
		logger,
	)
	ac := controllers.NewApiController(logger, journal)
	hc := controllers.NewHealthController(journal)
	app := NewApp(ac, hc, journal, &testutil.MockCompressor{}, conf, logger, InitRoutes(ac), metrics)
	return &routeFixture{app: app, journal: journal, kv: kv, metrics: metrics}
}

func (f *routeFixture) do(method, url, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	rr := httptest.NewRecorder()
	f.app.WebServer.Handler.ServeHTTP(rr, req)
	return rr
}

func TestInitRoutes_RegistersApiRoutes(t *testing.T) {
	ac := controllers.NewApiController(&testutil.MockLogger{}, nil)
	routes := InitRoutes(ac).GetRoutes()

	urls := make([]string, len(routes))
	for i, r := range routes {
		urls[i] = r.Url
	}
	assert.ElementsMatch(t, []string{
		"/records", "/record", "/settings",
		"/stats/month", "/stats/year", "/stats/week", "/stats/streaks", "/stats/weekdays",
		"/calendar",
	}, urls)
}

func TestRoutes_MethodEnforcement(t *testing.T) {
	f := newRouteFixture(t, testutil.NewMemoryKV())
	require.NoError(t, f.journal.Restore())

	assert.Equal(t, http.StatusMethodNotAllowed, f.do(http.MethodPost, "/stats/month", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, f.do(http.MethodPut, "/records", "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/nope", "").Code)
}

func TestRoutes_RecordRoundTrip(t *testing.T) {
	f := newRouteFixture(t, testutil.NewMemoryKV())
	require.NoError(t, f.journal.Restore())

	rr := f.do(http.MethodPost, "/records", `{"date":"2024-05-01","drank":true,"amount":7,"unit":"잔"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = f.do(http.MethodGet, "/record?date=2024-05-01", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rec))
	assert.Equal(t, "glass", rec["unit"])

	rr = f.do(http.MethodGet, "/stats/month?year=2024&month=5", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var stats map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, float64(2000), stats["cost"])

	rr = f.do(http.MethodGet, "/records?prefix=2024-05", "")
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	assert.Equal(t, 1, f.kv.SetCount("drinkdays_records"))
	assert.Greater(t, f.metrics.Requests, 0)
}

func TestRoutes_ReadOnlyConflict(t *testing.T) {
	kv := testutil.NewMemoryKV()
	kv.Put("drinkdays_records", "{broken")
	f := newRouteFixture(t, kv)
	require.Error(t, f.journal.Restore())

	rr := f.do(http.MethodPost, "/records", `{"date":"2024-05-01"}`)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = f.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"degraded"`)
}

func TestRoutes_PersistFailure(t *testing.T) {
	kv := testutil.NewMemoryKV()
	f := newRouteFixture(t, kv)
	require.NoError(t, f.journal.Restore())
	kv.FailSet = true

	rr := f.do(http.MethodPost, "/settings", `{"bottlePrice":3000}`)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, 1, f.metrics.PersistenceFailures["settings"])
}

func TestRoutes_MetricsOnlyWhenEnabled(t *testing.T) {
	f := newRouteFixture(t, testutil.NewMemoryKV())
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/metrics", "").Code)
}
