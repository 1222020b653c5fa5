package constants

import (
	"fmt"
	"time"
)

// Redis cache keys and TTL values, centralized so invalidation patterns
// stay in sync with the keys they match.
// Pattern: turfbook:{module}:{operation}:{identifier}

const (
	CACHE_PREFIX = "turfbook"
)

// Turf catalog keys. Turf definitions change rarely; a long TTL is fine
// because every write path invalidates explicitly.
const (
	CACHE_KEY_TURF_DETAIL = CACHE_PREFIX + ":turfs:detail:uuid:" // + turf-id
	CACHE_KEY_TURFS_LIST  = CACHE_PREFIX + ":turfs:list"         // + :page:X:limit:Y
)

const (
	TTL_TURF_DETAIL = 1 * time.Hour
	TTL_TURFS_LIST  = 15 * time.Minute
)

// BuildTurfDetailKey returns the cache key for a single turf.
func BuildTurfDetailKey(turfID string) string {
	return CACHE_KEY_TURF_DETAIL + turfID
}

// BuildTurfListKey returns the cache key for one page of the turf catalog.
func BuildTurfListKey(page, limit int) string {
	return fmt.Sprintf("%s:page:%d:limit:%d", CACHE_KEY_TURFS_LIST, page, limit)
}

// BuildTurfInvalidationPattern matches every cached view of a turf.
func BuildTurfInvalidationPattern(turfID string) string {
	return fmt.Sprintf("%s:turfs:*%s*", CACHE_PREFIX, turfID)
}

// BuildTurfListInvalidationPattern matches every cached catalog page.
func BuildTurfListInvalidationPattern() string {
	return CACHE_KEY_TURFS_LIST + ":*"
}
