package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/TQgit/ud-fsnd-project1-fyyur/internal/forms"
	"github.com/TQgit/ud-fsnd-project1-fyyur/internal/queue"
	"github.com/TQgit/ud-fsnd-project1-fyyur/internal/repository"
)

// ShowHandler aggregates the collaborators needed by the show pages. Shows
// are immutable once created, so the handler only lists and creates.
type ShowHandler struct {
	Shows  *repository.ShowRepo
	Flash  *FlashStore
	Events *queue.Publisher // optional; nil disables event publishing
}

// List renders every show ordered by start time ascending.
func (h *ShowHandler) List(c echo.Context) error {
	shows, err := h.Shows.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return renderPage(c, h.Flash, "shows.html", echo.Map{"shows": shows})
}

// CreateForm renders the empty show creation form.
func (h *ShowHandler) CreateForm(c echo.Context) error {
	return renderPage(c, h.Flash, "new_show.html", echo.Map{"form": forms.ShowForm()})
}

// Create inserts a show built from the submitted form. No existence check is
// made on the referenced venue and artist; a bad id is rejected by the
// store's foreign keys and reported through the same generic failure flash
// as any other error.
func (h *ShowHandler) Create(c echo.Context) error {
	s, err := showFromForm(c)
	if err == nil {
		err = h.Shows.Create(c.Request().Context(), s)
	}
	if err != nil {
		logrus.WithError(err).Warn("show create failed")
		h.Flash.Add(c, "An error occurred. Show could not be listed.")
		return c.Redirect(http.StatusFound, "/shows/create")
	}
	publishListing(c, h.Events, queue.ListingCreatedEvent{
		Kind:      "show",
		ID:        s.ID,
		VenueID:   s.VenueID,
		ArtistID:  s.ArtistID,
		StartTime: s.StartTime.UTC().Format(time.RFC3339),
	})
	h.Flash.Add(c, "The show was successfully listed!")
	return renderPage(c, h.Flash, "home.html", nil)
}

// showFromForm builds a Show from the submitted form values. A malformed id
// or timestamp is a mutation failure like any other.
func showFromForm(c echo.Context) (*repository.Show, error) {
	venueID, err := strconv.ParseUint(c.FormValue("venue_id"), 10, 64)
	if err != nil {
		return nil, err
	}
	artistID, err := strconv.ParseUint(c.FormValue("artist_id"), 10, 64)
	if err != nil {
		return nil, err
	}
	start, err := parseStartTime(c.FormValue("start_time"))
	if err != nil {
		return nil, err
	}
	return &repository.Show{VenueID: venueID, ArtistID: artistID, StartTime: start}, nil
}

// start-time formats accepted from the form, tried in order: the
// datetime-local input format, the plain DB format, and RFC 3339.
var startTimeFormats = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

func parseStartTime(s string) (time.Time, error) {
	var err error
	for _, layout := range startTimeFormats {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
