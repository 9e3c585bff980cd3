package handler

import (
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

// flashSession names the cookie session that carries flash messages between
// a mutation response and the next rendered page.
const flashSession = "fyyur_flash"

// FlashStore wraps a cookie session store for one-shot flash messages. A
// message added during one request is rendered by the next page that drains
// the store and is then gone.
type FlashStore struct {
	store *sessions.CookieStore
}

// NewFlashStore builds a FlashStore signing its cookies with secret.
func NewFlashStore(secret string) *FlashStore {
	s := sessions.NewCookieStore([]byte(secret))
	s.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
	}
	return &FlashStore{store: s}
}

// Add appends msg to the pending flash messages. Save errors are ignored:
// losing a flash message must never fail the request.
func (f *FlashStore) Add(c echo.Context, msg string) {
	sess, _ := f.store.Get(c.Request(), flashSession)
	sess.AddFlash(msg)
	_ = sess.Save(c.Request(), c.Response())
}

// Drain returns the pending flash messages and clears them. It must be
// called before the response body is written so the cleared cookie can still
// be set.
func (f *FlashStore) Drain(c echo.Context) []string {
	sess, _ := f.store.Get(c.Request(), flashSession)
	raw := sess.Flashes()
	if len(raw) > 0 {
		_ = sess.Save(c.Request(), c.Response())
	}
	out := make([]string, 0, len(raw))
	for _, m := range raw {
		if s, ok := m.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
