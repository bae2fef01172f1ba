package cache

import "strings"

const (
	GlobalKeyPrefix = "leadpath"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// CatalogSnapshotKey holds the JSON-encoded catalog.
func CatalogSnapshotKey() string {
	return GenerateCacheKey("catalog", "snapshot", "all")
}

// QuizResultKey holds one scored quiz outcome.
func QuizResultKey(id string) string {
	return GenerateCacheKey("quiz", "result", id)
}
