package handler

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TQgit/ud-fsnd-project1-fyyur/internal/repository"
	"github.com/TQgit/ud-fsnd-project1-fyyur/internal/view"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	renderer, err := view.New()
	require.NoError(t, err)
	e := echo.New()
	e.Renderer = renderer
	return e
}

func newVenueHandler(t *testing.T) (*VenueHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &VenueHandler{
		Venues: repository.NewVenueRepo(db),
		Shows:  repository.NewShowRepo(db),
		Flash:  NewFlashStore("test-secret"),
	}, mock
}

var venueCols = []string{
	"id", "name", "city", "state", "address", "phone", "genres",
	"image_link", "facebook_link", "website", "is_seeking_talent", "seeking_description",
}

func TestVenueDetailNotFound(t *testing.T) {
	e := newTestEcho(t)
	h, mock := newVenueHandler(t)
	mock.ExpectQuery("FROM venues WHERE id").WillReturnError(sql.ErrNoRows)

	req := httptest.NewRequest(http.MethodGet, "/venues/99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/venues/:id")
	c.SetParamNames("id")
	c.SetParamValues("99")

	require.NoError(t, h.Detail(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "404 Not Found")
}

func TestVenueDetailSplitsShows(t *testing.T) {
	e := newTestEcho(t)
	h, mock := newVenueHandler(t)

	mock.ExpectQuery("FROM venues WHERE id").
		WillReturnRows(sqlmock.NewRows(venueCols).AddRow(
			7, "The Spot", "Austin", "TX", "1 Main St", "555-0100", "Jazz,Blues",
			"http://x/img.png", nil, nil, true, "Looking for talented performers!"))
	mock.ExpectQuery("JOIN artists a").
		WillReturnRows(sqlmock.NewRows([]string{"artist_id", "name", "image_link", "start_time"}).
			AddRow(4, "Guns N Petals", "http://x/gnp.jpg", time.Now().Add(-24*time.Hour)).
			AddRow(5, "Zealots", "http://x/z.jpg", time.Now().Add(24*time.Hour)))

	req := httptest.NewRequest(http.MethodGet, "/venues/7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/venues/:id")
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, h.Detail(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	html := rec.Body.String()
	assert.Contains(t, html, "The Spot")
	assert.Contains(t, html, "1 Past Shows")
	assert.Contains(t, html, "1 Upcoming Shows")
	assert.Contains(t, html, "Guns N Petals")
	assert.Contains(t, html, "Zealots")
}

func TestVenueCreateFailureRedirectsBackToForm(t *testing.T) {
	e := newTestEcho(t)
	h, mock := newVenueHandler(t)
	mock.ExpectExec("INSERT INTO venues").
		WillReturnError(&mysql.MySQLError{Number: 1048, Message: "Column 'name' cannot be null"})

	form := strings.NewReader("name=The+Spot&city=Austin&state=TX&address=1+Main+St")
	req := httptest.NewRequest(http.MethodPost, "/venues/create", form)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Create(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/venues/create", rec.Header().Get(echo.HeaderLocation))
}

func TestVenueSearchRendersCount(t *testing.T) {
	e := newTestEcho(t)
	h, mock := newVenueHandler(t)
	mock.ExpectQuery("LIKE CONCAT").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "state", "count"}).
			AddRow(3, "Music Hall", "New York", "NY", 1))

	form := strings.NewReader("search_term=music")
	req := httptest.NewRequest(http.MethodPost, "/venues/search", form)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Search(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	html := rec.Body.String()
	assert.Contains(t, html, `"music": 1`)
	assert.Contains(t, html, "Music Hall")
}

func TestVenueDeleteFlashesOutcome(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		e := newTestEcho(t)
		h, mock := newVenueHandler(t)
		mock.ExpectExec("DELETE FROM venues").WillReturnResult(sqlmock.NewResult(0, 1))

		req := httptest.NewRequest(http.MethodDelete, "/venues/7", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/venues/:id")
		c.SetParamNames("id")
		c.SetParamValues("7")

		require.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Venue #7 was successfully deleted!")
	})

	t.Run("missing row", func(t *testing.T) {
		e := newTestEcho(t)
		h, mock := newVenueHandler(t)
		mock.ExpectExec("DELETE FROM venues").WillReturnResult(sqlmock.NewResult(0, 0))

		req := httptest.NewRequest(http.MethodDelete, "/venues/99", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/venues/:id")
		c.SetParamNames("id")
		c.SetParamValues("99")

		require.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Venue with id #99 was not deleted.")
	})
}
