package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/TQgit/ud-fsnd-project1-fyyur/internal/forms"
	"github.com/TQgit/ud-fsnd-project1-fyyur/internal/queue"
	"github.com/TQgit/ud-fsnd-project1-fyyur/internal/repository"
)

// ArtistHandler aggregates the collaborators needed by the artist pages.
// Artists have no delete path; shows referencing an artist outlive any other
// mutation made through these handlers.
type ArtistHandler struct {
	Artists *repository.ArtistRepo
	Shows   *repository.ShowRepo
	Flash   *FlashStore
	Events  *queue.Publisher // optional; nil disables event publishing
}

// List renders all artists ordered by name.
func (h *ArtistHandler) List(c echo.Context) error {
	artists, err := h.Artists.ListNames(c.Request().Context())
	if err != nil {
		return err
	}
	return renderPage(c, h.Flash, "artists.html", echo.Map{"artists": artists})
}

// Search renders the artists whose name contains the submitted term,
// case-insensitively. An empty term matches every artist.
func (h *ArtistHandler) Search(c echo.Context) error {
	term := c.FormValue("search_term")
	results, err := h.Artists.SearchByName(c.Request().Context(), term, time.Now())
	if err != nil {
		return err
	}
	return renderPage(c, h.Flash, "search_artists.html", echo.Map{
		"search_term": term,
		"count":       len(results),
		"data":        results,
	})
}

// Detail renders one artist with their shows partitioned into past and
// upcoming.
func (h *ArtistHandler) Detail(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := parseID(c)
	if err != nil {
		return renderNotFound(c)
	}
	a, err := h.Artists.GetByID(ctx, id)
	if errors.Is(err, repository.ErrArtistNotFound) {
		return renderNotFound(c)
	}
	if err != nil {
		return err
	}
	shows, err := h.Shows.ByArtist(ctx, id)
	if err != nil {
		return err
	}
	past, upcoming := repository.SplitShowsWithVenue(shows, time.Now())
	return renderPage(c, h.Flash, "show_artist.html", echo.Map{
		"artist":         a,
		"past_shows":     past,
		"upcoming_shows": upcoming,
	})
}

// CreateForm renders the empty artist creation form.
func (h *ArtistHandler) CreateForm(c echo.Context) error {
	return renderPage(c, h.Flash, "new_artist.html", echo.Map{"form": forms.ArtistForm()})
}

// Create inserts an artist built from the submitted form. A duplicate name
// fails like any other mutation error: generic flash, back to the form.
func (h *ArtistHandler) Create(c echo.Context) error {
	a := artistFromForm(c)
	if err := h.Artists.Create(c.Request().Context(), a); err != nil {
		logrus.WithError(err).Warn("artist create failed")
		h.Flash.Add(c, "An error occurred. Artist "+a.Name+" could not be listed.")
		return c.Redirect(http.StatusFound, "/artists/create")
	}
	publishListing(c, h.Events, queue.ListingCreatedEvent{Kind: "artist", ID: a.ID, Name: a.Name})
	h.Flash.Add(c, "Artist "+a.Name+" was successfully listed!")
	return renderPage(c, h.Flash, "home.html", nil)
}

// EditForm renders the edit form for an existing artist.
func (h *ArtistHandler) EditForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return renderNotFound(c)
	}
	a, err := h.Artists.GetByID(c.Request().Context(), id)
	if errors.Is(err, repository.ErrArtistNotFound) {
		return renderNotFound(c)
	}
	if err != nil {
		return err
	}
	return renderPage(c, h.Flash, "edit_artist.html", echo.Map{
		"form":   forms.ArtistForm(),
		"artist": a,
	})
}

// Edit overwrites every mutable field of an existing artist with the
// submitted values. Success redirects to the artist's detail page.
func (h *ArtistHandler) Edit(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := parseID(c)
	if err != nil {
		return renderNotFound(c)
	}
	a, err := h.Artists.GetByID(ctx, id)
	if errors.Is(err, repository.ErrArtistNotFound) {
		return renderNotFound(c)
	}
	if err != nil {
		return err
	}

	sub := artistFromForm(c)
	sub.ID = a.ID
	if err := h.Artists.Update(ctx, sub); err != nil {
		logrus.WithError(err).WithField("artist_id", id).Warn("artist update failed")
		h.Flash.Add(c, "An error occurred. Artist "+sub.Name+" could not be updated.")
		return c.Redirect(http.StatusFound, "/artists/"+c.Param("id")+"/edit")
	}
	h.Flash.Add(c, "Artist "+sub.Name+" was successfully updated!")
	return c.Redirect(http.StatusFound, "/artists/"+c.Param("id"))
}

// artistFromForm builds an Artist from the submitted form values.
func artistFromForm(c echo.Context) *repository.Artist {
	params, _ := c.FormParams()
	return &repository.Artist{
		Name:         c.FormValue("name"),
		City:         c.FormValue("city"),
		State:        c.FormValue("state"),
		Phone:        c.FormValue("phone"),
		Genres:       params["genres"],
		ImageLink:    c.FormValue("image_link"),
		FacebookLink: c.FormValue("facebook_link"),
		Website:      c.FormValue("website"),
	}
}
