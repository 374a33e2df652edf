package services

import (
	"drinkdays/internal/providers"
	"fmt"

	json "github.com/goccy/go-json"
)

// memoKey addresses a derived result. Both versions are part of the key,
// so a write makes every older entry unreachable.
func memoKey(query string, recordsVersion, settingsVersion uint64, params string) string {
	return fmt.Sprintf("%s:r%d:s%d:%s", query, recordsVersion, settingsVersion, params)
}

// memoize serves a cached result or computes it once, even when several
// callers miss on the same key at the same time.
func memoize[T any](s *JournalService, key string, compute func() T) (T, error) {
	if data, ok := s.cache.Get(key); ok {
		var cached T
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
		s.logger.Warnf(providers.TypeApp, "Dropping unreadable memo entry %s", key)
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		result := compute()
		data, err := json.Marshal(result)
		if err != nil {
			return nil, err
		}
		s.cache.Set(key, data)
		return result, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
