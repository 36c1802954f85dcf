package config

import (
	"net/http"
	"strings"
	"time"
)

// CacheConfig defines settings for the reservation response cache.  Only
// read methods can be cached: every other method that succeeds increments
// the Redis counter at Generation(), and the generation is part of each
// cache key, so a write orphans every list and detail cached before it.
type CacheConfig struct {
	Enabled       bool
	Methods       map[string]bool
	TTL           time.Duration
	KeyStrategy   string
	Prefix        string
	GenerationKey string // overrides Prefix + ":gen"
	MaxBodyBytes  int
}

// Generation returns the Redis key of the write counter.
func (c CacheConfig) Generation() string {
	if c.GenerationKey != "" {
		return c.GenerationKey
	}
	return c.Prefix + ":gen"
}

// LoadCacheConfig reads CACHE_* variables.  Methods other than GET and HEAD
// listed in CACHE_METHODS are dropped, since caching a reservation write
// would replay it without touching the register.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:       envBool("CACHE_ENABLED", true),
		Methods:       cacheableMethods(getenv("CACHE_METHODS", http.MethodGet)),
		TTL:           parseDur(getenv("CACHE_TTL", "30s")),
		KeyStrategy:   getenv("CACHE_KEY_STRATEGY", "route_query"),
		Prefix:        getenv("CACHE_PREFIX", "hotel:cache"),
		GenerationKey: getenv("CACHE_GENERATION_KEY", ""),
		MaxBodyBytes:  atoi(getenv("CACHE_MAX_BODY_BYTES", "1048576")),
	}
}

func cacheableMethods(s string) map[string]bool {
	m := map[string]bool{}
	for _, p := range strings.Split(s, ",") {
		switch p = strings.TrimSpace(strings.ToUpper(p)); p {
		case http.MethodGet, http.MethodHead:
			m[p] = true
		}
	}
	return m
}
