// Package router defines how HTTP routes are registered for the site.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/TQgit/ud-fsnd-project1-fyyur/internal/handler"
)

// RegisterRoutes wires every page onto the provided Echo instance. pageCache
// is applied to the three list pages only; mutation routes and detail pages
// are always rendered fresh.
func RegisterRoutes(e *echo.Echo,
	home *handler.HomeHandler,
	v *handler.VenueHandler,
	a *handler.ArtistHandler,
	s *handler.ShowHandler,
	pageCache echo.MiddlewareFunc,
) {
	e.GET("/", home.Home)
	e.GET("/healthz", handler.Health)

	// Venues
	e.GET("/venues", v.List, pageCache)
	e.POST("/venues/search", v.Search)
	e.GET("/venues/create", v.CreateForm)
	e.POST("/venues/create", v.Create)
	e.GET("/venues/:id", v.Detail)
	e.DELETE("/venues/:id", v.Delete)
	e.GET("/venues/:id/edit", v.EditForm)
	e.POST("/venues/:id/edit", v.Edit)

	// Artists
	e.GET("/artists", a.List, pageCache)
	e.POST("/artists/search", a.Search)
	e.GET("/artists/create", a.CreateForm)
	e.POST("/artists/create", a.Create)
	e.GET("/artists/:id", a.Detail)
	e.GET("/artists/:id/edit", a.EditForm)
	e.POST("/artists/:id/edit", a.Edit)

	// Shows
	e.GET("/shows", s.List, pageCache)
	e.GET("/shows/create", s.CreateForm)
	e.POST("/shows/create", s.Create)
}
