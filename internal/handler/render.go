package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// renderPage renders a template with the pending flash messages merged into
// the data mapping under "flashes".
func renderPage(c echo.Context, flash *FlashStore, name string, data echo.Map) error {
	if data == nil {
		data = echo.Map{}
	}
	msgs := []string{}
	if flash != nil {
		msgs = flash.Drain(c)
	}
	data["flashes"] = msgs
	return c.Render(http.StatusOK, name, data)
}

// renderNotFound renders the dedicated not-found page.
func renderNotFound(c echo.Context) error {
	return c.Render(http.StatusNotFound, "404.html", echo.Map{})
}

// parseID parses the :id route parameter.
func parseID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// ErrorHandler is the application's echo.HTTPErrorHandler. Anything escaping
// a handler is logged and answered with the 404 or 500 page, so the user
// always receives a page rather than a raw failure.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}
	if code >= http.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{
			"method": c.Request().Method,
			"path":   c.Request().URL.Path,
		}).WithError(err).Error("unhandled request error")
	}
	name := "500.html"
	if code == http.StatusNotFound {
		name = "404.html"
	}
	if rerr := c.Render(code, name, echo.Map{}); rerr != nil {
		_ = c.NoContent(code)
	}
}
