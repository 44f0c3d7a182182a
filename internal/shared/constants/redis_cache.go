package constants

import (
	"fmt"
	"time"
)

// Redis Cache Configuration
// Pattern: saunie:{module}:{operation}:{identifier}:{params?}
// Seat maps are never cached; they are derived from bookings on every read.

// ================== CACHE TTL DURATIONS ==================

const (
	TTL_SEMI_STATIC_SHORT = 1 * time.Hour    // 1 hour - for patron profiles
	TTL_DYNAMIC_MEDIUM    = 10 * time.Minute // 10 minutes - for trip details
	TTL_DYNAMIC_QUICK     = 2 * time.Minute  // 2 minutes - for trip listings
	TTL_REALTIME_MEDIUM   = 1 * time.Minute  // 1 minute - for dashboard figures
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "saunie"
)

// ================== TRIPS MODULE ==================

const (
	CACHE_KEY_TRIPS_LIST  = CACHE_PREFIX + ":trips:list"         // + :page:X:limit:Y:search:Z
	CACHE_KEY_TRIP_DETAIL = CACHE_PREFIX + ":trips:detail:uuid:" // + trip-id
)

const (
	TTL_TRIPS_LIST  = TTL_DYNAMIC_QUICK  // 2 minutes
	TTL_TRIP_DETAIL = TTL_DYNAMIC_MEDIUM // 10 minutes
)

// ================== PATRONS MODULE ==================

const (
	CACHE_KEY_PATRON_DETAIL = CACHE_PREFIX + ":patrons:detail:uuid:" // + patron-id
)

const (
	TTL_PATRON_DETAIL = TTL_SEMI_STATIC_SHORT // 1 hour
)

// ================== ANALYTICS MODULE ==================

const (
	CACHE_KEY_ANALYTICS_DASHBOARD = CACHE_PREFIX + ":analytics:dashboard"
)

const (
	TTL_ANALYTICS_DASHBOARD = TTL_REALTIME_MEDIUM // 1 minute
)

// ================== LOCKS ==================

const (
	LOCK_KEY_TRIP_SEATS = CACHE_PREFIX + ":locks:trip:" // + trip-id
)

// ================== CACHE INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_TRIPS_LIST = CACHE_KEY_TRIPS_LIST + ":*"
	PATTERN_INVALIDATE_ANALYTICS  = CACHE_PREFIX + ":analytics:*"
)

// ================== HELPER FUNCTIONS ==================

// BuildTripListKey -> "saunie:trips:list:page:1:limit:10:search:rome"
func BuildTripListKey(page, limit int, search string) string {
	return fmt.Sprintf("%s:page:%d:limit:%d:search:%s", CACHE_KEY_TRIPS_LIST, page, limit, search)
}

func BuildTripDetailKey(tripID string) string {
	return CACHE_KEY_TRIP_DETAIL + tripID
}

func BuildPatronDetailKey(patronID string) string {
	return CACHE_KEY_PATRON_DETAIL + patronID
}

func BuildTripLockKey(tripID string) string {
	return LOCK_KEY_TRIP_SEATS + tripID
}
