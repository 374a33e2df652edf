package testutil

import (
	"drinkdays/internal/providers"
	"errors"
	"strings"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level whose format
// contains substr.
func (m *MockLogger) Count(level, substr string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level && strings.Contains(e.Format, substr) {
			n++
		}
	}
	return n
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
	Gets int
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Gets++
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.Data))
	for k := range m.Data {
		keys = append(keys, k)
	}
	return keys
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
	Closed       bool
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {
	m.Closed = true
}

var ErrStoreUnavailable = errors.New("store unavailable")

// MemoryKV implements interfaces.KeyValueStore in memory. Setting FailSet
// or FailGet makes the matching call return ErrStoreUnavailable.
type MemoryKV struct {
	mu      sync.Mutex
	Data    map[string][]byte
	Sets    map[string]int
	FailSet bool
	FailGet bool
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{Data: make(map[string][]byte), Sets: make(map[string]int)}
}

func (m *MemoryKV) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailGet {
		return nil, false, ErrStoreUnavailable
	}
	val, ok := m.Data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, true, nil
}

func (m *MemoryKV) Set(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSet {
		return ErrStoreUnavailable
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	m.Data[key] = stored
	m.Sets[key]++
	return nil
}

func (m *MemoryKV) Put(key, raw string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = []byte(raw)
}

func (m *MemoryKV) SetCount(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Sets[key]
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu                  sync.Mutex
	CacheHits           map[string]int
	CacheMisses         map[string]int
	Persisted           map[string]int
	PersistenceFailures map[string]int
	Requests            int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		CacheHits:           make(map[string]int),
		CacheMisses:         make(map[string]int),
		Persisted:           make(map[string]int),
		PersistenceFailures: make(map[string]int),
	}
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits(query string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits[query]++
}
func (m *MockMetrics) IncCacheMisses(query string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses[query]++
}
func (m *MockMetrics) ObservePersistenceDuration(store string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Persisted[store]++
}
func (m *MockMetrics) IncPersistenceFailures(store string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistenceFailures[store]++
}
