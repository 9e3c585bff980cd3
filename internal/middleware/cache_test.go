package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TQgit/ud-fsnd-project1-fyyur/internal/config"
)

func TestPageCacheDisabledIsPassThrough(t *testing.T) {
	mw := PageCache(config.CacheConfig{Enabled: false}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/venues", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	next := func(c echo.Context) error {
		called = true
		return c.HTML(http.StatusOK, "<p>venues</p>")
	}

	require.NoError(t, mw(next)(c))
	assert.True(t, called)
	assert.Equal(t, "<p>venues</p>", rec.Body.String())
}

func TestCaptureWriterBuffersUpToLimit(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, lim: 8}

	n, err := cw.Write([]byte("venues"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, http.StatusOK, cw.code)
	assert.Equal(t, "venues", cw.buf.String())

	// The second chunk exceeds the limit: it reaches the client but is not
	// buffered, and the oversize total disqualifies the page from caching.
	_, err = cw.Write([]byte("and artists"))
	require.NoError(t, err)
	assert.Equal(t, "venuesand artists", rec.Body.String())
	assert.Equal(t, "venues", cw.buf.String())
	assert.Greater(t, cw.size, cw.lim)
}

func TestPageKeyVariesByQuery(t *testing.T) {
	e := echo.New()

	makeCtx := func(target string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetPath("/venues")
		return c
	}

	a := pageKey("cache", makeCtx("/venues"))
	b := pageKey("cache", makeCtx("/venues?page=2"))
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, pageKey("cache", makeCtx("/venues")))
}
