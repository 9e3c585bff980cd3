// Package middleware provides the HTTP middleware used by the server: a
// Redis-backed page cache for GET responses and a request logger.
package middleware

import (
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/TQgit/ud-fsnd-project1-fyyur/internal/config"
)

// cachedPage is the envelope stored in Redis for a cacheable response.
type cachedPage struct {
	Status int    `json:"status"`
	Body   []byte `json:"body"`
}

// captureWriter buffers the response body up to a limit while forwarding it
// to the client unchanged.
type captureWriter struct {
	http.ResponseWriter
	code int
	buf  bytes.Buffer
	size int
	lim  int
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.code = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	if cw.code == 0 {
		cw.code = http.StatusOK
	}
	if cw.size < cw.lim {
		remain := cw.lim - cw.size
		if len(b) <= remain {
			cw.buf.Write(b)
		}
	}
	cw.size += len(b)
	return cw.ResponseWriter.Write(b)
}

// PageCache caches successful GET page responses in Redis for the configured
// TTL. It is a no-op when caching is disabled or no Redis client is
// available. Requests carrying the skip cookie bypass the cache so pages
// holding one-shot flash messages are always rendered fresh.
func PageCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			if cfg.SkipCookie != "" {
				if _, err := c.Cookie(cfg.SkipCookie); err == nil {
					return next(c)
				}
			}

			ctx := c.Request().Context()
			key := pageKey(cfg.Prefix, c)
			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var p cachedPage
				if json.Unmarshal(raw, &p) == nil {
					return c.HTMLBlob(p.Status, p.Body)
				}
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, lim: cfg.MaxBodyBytes}
			c.Response().Writer = cw
			if err := next(c); err != nil {
				return err
			}

			// Only complete 200 responses are worth keeping.
			if cw.code == http.StatusOK && cw.size <= cfg.MaxBodyBytes {
				p := cachedPage{Status: cw.code, Body: cw.buf.Bytes()}
				if raw, err := json.Marshal(p); err == nil {
					rdb.Set(ctx, key, raw, cfg.TTL)
				}
			}
			return nil
		}
	}
}

// pageKey builds a stable cache key from the route and query string.
func pageKey(prefix string, c echo.Context) string {
	sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery))
	return fmt.Sprintf("%s:%x", prefix, sum[:])
}
