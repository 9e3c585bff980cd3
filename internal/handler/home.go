package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HomeHandler renders the landing page.
type HomeHandler struct {
	Flash *FlashStore
}

// Home renders the home page with any pending flash messages.
func (h *HomeHandler) Home(c echo.Context) error {
	return renderPage(c, h.Flash, "home.html", nil)
}

// Health reports liveness for load balancers and monitoring.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
