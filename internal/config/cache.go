package config

import (
	"time"
)

// CacheConfig defines settings for the page cache middleware. When Enabled is
// false or no Redis client is available, caching is disabled. TTL defines the
// lifetime of cached pages, Prefix namespaces the keys, and MaxBodyBytes caps
// the size of responses worth caching. SkipCookie names a cookie whose
// presence bypasses the cache entirely, so that pages carrying one-shot flash
// messages are never served stale.
type CacheConfig struct {
	Enabled      bool
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int
	SkipCookie   string
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are unset.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      getenv("CACHE_ENABLED", "true") == "true",
		TTL:          parseDur(getenv("CACHE_TTL", "30s")),
		Prefix:       getenv("CACHE_PREFIX", "cache"),
		MaxBodyBytes: atoi(getenv("CACHE_MAX_BODY_BYTES", "1048576")),
		SkipCookie:   getenv("CACHE_SKIP_COOKIE", "fyyur_flash"),
	}
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}
