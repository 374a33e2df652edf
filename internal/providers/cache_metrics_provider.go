package providers

import (
	"drinkdays/internal/structures"
	"strings"
)

// MetricsCacheProvider counts hits and misses per query kind. The kind is
// the key segment before the first colon, e.g. "month" for
// "month:r3:s1:2024-05".
type MetricsCacheProvider struct {
	inner   CacheProviderInterface
	metrics MetricsProviderInterface
}

func (c *MetricsCacheProvider) Get(key string) ([]byte, bool) {
	val, ok := c.inner.Get(key)
	query := queryKind(key)
	if ok {
		c.metrics.IncCacheHits(query)
	} else {
		c.metrics.IncCacheMisses(query)
	}
	return val, ok
}

func (c *MetricsCacheProvider) Set(key string, value []byte) {
	c.inner.Set(key, value)
}

func queryKind(key string) string {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[:i]
	}
	return key
}

// NewInstrumentedCacheProvider wraps the cache with hit/miss counters.
// A disabled cache is returned bare so it does not report phantom misses.
func NewInstrumentedCacheProvider(conf *structures.Config, logger Logger, metrics MetricsProviderInterface) CacheProviderInterface {
	inner := NewCacheProvider(conf, logger)
	if _, disabled := inner.(*noopCache); disabled {
		return inner
	}
	return &MetricsCacheProvider{
		inner:   inner,
		metrics: metrics,
	}
}
