// This file defines the Show model and repository methods for shows. A Show
// is a pure association record between one venue and one artist at one point
// in time. Shows are immutable once created: no update or delete statement
// exists for them anywhere in this package.
package repository

import (
	"context"
	"database/sql"
	"time"
)

// Show represents a show row.
type Show struct {
	ID        uint64
	VenueID   uint64
	ArtistID  uint64
	StartTime time.Time
}

// ShowWithArtist is a show at a known venue projected with the performing
// artist's identity and image, as rendered on the venue detail page.
type ShowWithArtist struct {
	ArtistID        uint64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// ShowWithVenue is a show by a known artist projected with the hosting
// venue's identity and image, as rendered on the artist detail page.
type ShowWithVenue struct {
	VenueID        uint64
	VenueName      string
	VenueImageLink string
	StartTime      time.Time
}

// ShowListing is the projection for the shows list page: both foreign
// entities' identities plus the artist's image and the start time.
type ShowListing struct {
	VenueID         uint64
	VenueName       string
	ArtistID        uint64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create inserts a new show and assigns the generated ID back to the struct.
// No existence check is performed on venue_id or artist_id: the schema's
// foreign keys are the only guard, and their rejection surfaces as
// ErrConstraint.
func (r *ShowRepo) Create(ctx context.Context, s *Show) error {
	const q = `INSERT INTO shows (venue_id, artist_id, start_time) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.VenueID, s.ArtistID, s.StartTime)
	if err != nil {
		return classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return classify(err)
	}
	s.ID = uint64(id)
	return nil
}

// ListAll returns every show ordered by start time ascending, each joined
// with both foreign entities.
func (r *ShowRepo) ListAll(ctx context.Context) ([]ShowListing, error) {
	const q = `SELECT s.venue_id, v.name, s.artist_id, a.name, a.image_link, s.start_time
	           FROM shows s
	           JOIN venues v ON v.id = s.venue_id
	           JOIN artists a ON a.id = s.artist_id
	           ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var out []ShowListing
	for rows.Next() {
		var l ShowListing
		if err := rows.Scan(&l.VenueID, &l.VenueName, &l.ArtistID, &l.ArtistName, &l.ArtistImageLink, &l.StartTime); err != nil {
			return nil, classify(err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// ByVenue returns the shows hosted at a venue joined with their artists,
// ordered by start time ascending.
func (r *ShowRepo) ByVenue(ctx context.Context, venueID uint64) ([]ShowWithArtist, error) {
	const q = `SELECT s.artist_id, a.name, a.image_link, s.start_time
	           FROM shows s
	           JOIN artists a ON a.id = s.artist_id
	           WHERE s.venue_id = ?
	           ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q, venueID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var out []ShowWithArtist
	for rows.Next() {
		var s ShowWithArtist
		if err := rows.Scan(&s.ArtistID, &s.ArtistName, &s.ArtistImageLink, &s.StartTime); err != nil {
			return nil, classify(err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// ByArtist returns the shows performed by an artist joined with their venues,
// ordered by start time ascending.
func (r *ShowRepo) ByArtist(ctx context.Context, artistID uint64) ([]ShowWithVenue, error) {
	const q = `SELECT s.venue_id, v.name, v.image_link, s.start_time
	           FROM shows s
	           JOIN venues v ON v.id = s.venue_id
	           WHERE s.artist_id = ?
	           ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q, artistID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var out []ShowWithVenue
	for rows.Next() {
		var s ShowWithVenue
		if err := rows.Scan(&s.VenueID, &s.VenueName, &s.VenueImageLink, &s.StartTime); err != nil {
			return nil, classify(err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// SplitShowsWithArtist partitions a venue's shows into past and upcoming by
// strict comparison against now. A show starting exactly at now lands in
// neither slice.
func SplitShowsWithArtist(shows []ShowWithArtist, now time.Time) (past, upcoming []ShowWithArtist) {
	for _, s := range shows {
		if s.StartTime.Before(now) {
			past = append(past, s)
		} else if s.StartTime.After(now) {
			upcoming = append(upcoming, s)
		}
	}
	return past, upcoming
}

// SplitShowsWithVenue partitions an artist's shows into past and upcoming by
// strict comparison against now.
func SplitShowsWithVenue(shows []ShowWithVenue, now time.Time) (past, upcoming []ShowWithVenue) {
	for _, s := range shows {
		if s.StartTime.Before(now) {
			past = append(past, s)
		} else if s.StartTime.After(now) {
			upcoming = append(upcoming, s)
		}
	}
	return past, upcoming
}
