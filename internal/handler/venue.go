// Package handler exposes the HTTP handlers behind the directory's pages.
// Handlers translate a request into query or mutation calls on the
// repositories plus a template selection; every data-layer failure is
// converted into a flash message or the not-found page, never a raw error.
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

// VenueHandler aggregates the collaborators needed by the venue pages.
type VenueHandler struct {
	Venues *repository.VenueRepo
	Shows  *repository.ShowRepo
	Flash  *FlashStore
	Events *queue.Publisher // optional; nil disables event publishing
}

// List renders all venues grouped by (city, state), ordered by state then
// city, each venue carrying its upcoming-show count.
func (h *VenueHandler) List(c echo.Context) error {
	venues, err := h.Venues.ListAll(c.Request().Context(), time.Now())
	if err != nil {
		return err
	}
	return renderPage(c, h.Flash, "venues.html", echo.Map{
		"areas": repository.GroupByArea(venues),
	})
}

// Search renders the venues whose name contains the submitted term,
// case-insensitively. An empty term matches every venue.
func (h *VenueHandler) Search(c echo.Context) error {
	term := c.FormValue("search_term")
	results, err := h.Venues.SearchByName(c.Request().Context(), term, time.Now())
	if err != nil {
		return err
	}
	return renderPage(c, h.Flash, "search_venues.html", echo.Map{
		"search_term": term,
		"count":       len(results),
		"data":        results,
	})
}

// Detail renders one venue with its shows partitioned into past and upcoming.
func (h *VenueHandler) Detail(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := parseID(c)
	if err != nil {
		return renderNotFound(c)
	}
	v, err := h.Venues.GetByID(ctx, id)
	if errors.Is(err, repository.ErrVenueNotFound) {
		return renderNotFound(c)
	}
	if err != nil {
		return err
	}
	shows, err := h.Shows.ByVenue(ctx, id)
	if err != nil {
		return err
	}
	past, upcoming := repository.SplitShowsWithArtist(shows, time.Now())
	return renderPage(c, h.Flash, "show_venue.html", echo.Map{
		"venue":          v,
		"past_shows":     past,
		"upcoming_shows": upcoming,
	})
}

// CreateForm renders the empty venue creation form.
func (h *VenueHandler) CreateForm(c echo.Context) error {
	return renderPage(c, h.Flash, "new_venue.html", echo.Map{"form": forms.VenueForm()})
}

// Create inserts a venue built from the submitted form. On failure the user
// is flashed the generic listing-failed message and sent back to the form.
func (h *VenueHandler) Create(c echo.Context) error {
	v := venueFromForm(c)
	if err := h.Venues.Create(c.Request().Context(), v); err != nil {
		logrus.WithError(err).Warn("venue create failed")
		h.Flash.Add(c, "An error occurred. Venue "+v.Name+" could not be listed.")
		return c.Redirect(http.StatusFound, "/venues/create")
	}
	publishListing(c, h.Events, queue.ListingCreatedEvent{Kind: "venue", ID: v.ID, Name: v.Name})
	h.Flash.Add(c, "Venue "+v.Name+" was successfully listed!")
	return renderPage(c, h.Flash, "home.html", nil)
}

// Delete removes a venue; the schema cascades the deletion to its shows.
// The home page is rendered either way, with a flash reporting the outcome.
func (h *VenueHandler) Delete(c echo.Context) error {
	rawID := c.Param("id")
	id, err := parseID(c)
	if err == nil {
		err = h.Venues.Delete(c.Request().Context(), id)
	}
	if err != nil {
		logrus.WithError(err).WithField("venue_id", rawID).Warn("venue delete failed")
		h.Flash.Add(c, "An error occurred. Venue with id #"+rawID+" was not deleted.")
	} else {
		h.Flash.Add(c, "Venue #"+rawID+" was successfully deleted!")
	}
	return renderPage(c, h.Flash, "home.html", nil)
}

// EditForm renders the edit form for an existing venue.
func (h *VenueHandler) EditForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return renderNotFound(c)
	}
	v, err := h.Venues.GetByID(c.Request().Context(), id)
	if errors.Is(err, repository.ErrVenueNotFound) {
		return renderNotFound(c)
	}
	if err != nil {
		return err
	}
	return renderPage(c, h.Flash, "edit_venue.html", echo.Map{
		"form":  forms.VenueForm(),
		"venue": v,
	})
}

// Edit overwrites every mutable field of an existing venue with the
// submitted values. Failure semantics match Create; success redirects to the
// venue's detail page.
func (h *VenueHandler) Edit(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := parseID(c)
	if err != nil {
		return renderNotFound(c)
	}
	v, err := h.Venues.GetByID(ctx, id)
	if errors.Is(err, repository.ErrVenueNotFound) {
		return renderNotFound(c)
	}
	if err != nil {
		return err
	}

	sub := venueFromForm(c)
	sub.ID = v.ID
	if err := h.Venues.Update(ctx, sub); err != nil {
		logrus.WithError(err).WithField("venue_id", id).Warn("venue update failed")
		h.Flash.Add(c, "An error occurred. Venue "+sub.Name+" could not be updated.")
		return c.Redirect(http.StatusFound, "/venues/"+c.Param("id")+"/edit")
	}
	h.Flash.Add(c, "Venue "+sub.Name+" was successfully updated!")
	return c.Redirect(http.StatusFound, "/venues/"+c.Param("id"))
}

// venueFromForm builds a Venue from the submitted form values.
func venueFromForm(c echo.Context) *repository.Venue {
	params, _ := c.FormParams()
	return &repository.Venue{
		Name:         c.FormValue("name"),
		City:         c.FormValue("city"),
		State:        c.FormValue("state"),
		Address:      c.FormValue("address"),
		Phone:        c.FormValue("phone"),
		Genres:       params["genres"],
		ImageLink:    c.FormValue("image_link"),
		FacebookLink: c.FormValue("facebook_link"),
		Website:      c.FormValue("website"),
	}
}

// publishListing emits a listing-created event. Publishing is best effort:
// errors are logged by the publisher and never fail the request.
func publishListing(c echo.Context, events *queue.Publisher, ev queue.ListingCreatedEvent) {
	if events == nil {
		return
	}
	_ = events.ListingCreated(c.Request().Context(), ev)
}
