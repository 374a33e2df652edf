package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type cacheMetricsTestMetrics struct {
	hits   map[string]int
	misses map[string]int
}

func newCacheMetricsTestMetrics() *cacheMetricsTestMetrics {
	return &cacheMetricsTestMetrics{hits: map[string]int{}, misses: map[string]int{}}
}

func (m *cacheMetricsTestMetrics) IncRequestsTotal(_ string, _ int)                     {}
func (m *cacheMetricsTestMetrics) ObserveRequestDuration(_ string, _ time.Duration)     {}
func (m *cacheMetricsTestMetrics) IncCacheHits(q string)                                { m.hits[q]++ }
func (m *cacheMetricsTestMetrics) IncCacheMisses(q string)                              { m.misses[q]++ }
func (m *cacheMetricsTestMetrics) ObservePersistenceDuration(_ string, _ time.Duration) {}
func (m *cacheMetricsTestMetrics) IncPersistenceFailures(_ string)                      {}

type cacheMetricsTestInner struct {
	data map[string][]byte
}

func (c *cacheMetricsTestInner) Get(key string) ([]byte, bool) {
	v, ok := c.data[key]
	return v, ok
}
func (c *cacheMetricsTestInner) Set(key string, value []byte) {
	c.data[key] = value
}

func TestMetricsCacheProvider_Hit(t *testing.T) {
	inner := &cacheMetricsTestInner{data: map[string][]byte{"month:r1:s1:2024-05": []byte("val1")}}
	metrics := newCacheMetricsTestMetrics()
	cache := &MetricsCacheProvider{inner: inner, metrics: metrics}

	val, ok := cache.Get("month:r1:s1:2024-05")
	assert.True(t, ok)
	assert.Equal(t, []byte("val1"), val)
	assert.Equal(t, 1, metrics.hits["month"])
	assert.Empty(t, metrics.misses)
}

func TestMetricsCacheProvider_Miss(t *testing.T) {
	inner := &cacheMetricsTestInner{data: map[string][]byte{}}
	metrics := newCacheMetricsTestMetrics()
	cache := &MetricsCacheProvider{inner: inner, metrics: metrics}

	val, ok := cache.Get("streaks:r1:s1:2024-05-10")
	assert.False(t, ok)
	assert.Nil(t, val)
	assert.Empty(t, metrics.hits)
	assert.Equal(t, 1, metrics.misses["streaks"])
}

func TestMetricsCacheProvider_SetDelegates(t *testing.T) {
	inner := &cacheMetricsTestInner{data: map[string][]byte{}}
	cache := &MetricsCacheProvider{inner: inner, metrics: newCacheMetricsTestMetrics()}

	cache.Set("year:r1:s1:2024", []byte("v"))
	assert.Equal(t, []byte("v"), inner.data["year:r1:s1:2024"])
}

func TestQueryKind(t *testing.T) {
	assert.Equal(t, "week", queryKind("week:r2:s1:-1:2024-05-10"))
	assert.Equal(t, "plain", queryKind("plain"))
}

func TestNewInstrumentedCacheProvider_DisabledIsBare(t *testing.T) {
	c := NewInstrumentedCacheProvider(cacheConfig(false, 1, 60), &cacheTestLogger{}, newCacheMetricsTestMetrics())
	assert.IsType(t, &noopCache{}, c)
}

func TestNewInstrumentedCacheProvider_EnabledIsWrapped(t *testing.T) {
	c := NewInstrumentedCacheProvider(cacheConfig(true, 1, 60), &cacheTestLogger{}, newCacheMetricsTestMetrics())
	assert.IsType(t, &MetricsCacheProvider{}, c)
}
