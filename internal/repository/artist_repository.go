// This file defines the Artist model and repository methods for artists. An
// Artist is a performer that can be booked at venues. Artist names are
// globally unique; the schema enforces this with a unique key.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Artist represents an artist row. Phone, FacebookLink and Website are
// optional and stored as empty strings when absent.
type Artist struct {
	ID                 uint64
	Name               string
	City               string
	State              string
	Phone              string
	Genres             []string
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingVenue       bool
	SeekingDescription string
}

// ArtistRef is the minimal projection used by the artists list page.
type ArtistRef struct {
	ID   uint64
	Name string
}

// ArtistSummary is the search-page projection: identity plus a freshly
// computed count of upcoming shows.
type ArtistSummary struct {
	ID            uint64
	Name          string
	UpcomingShows uint64
}

// ArtistRepo encapsulates all database queries related to artists.
type ArtistRepo struct {
	db *sql.DB
}

// NewArtistRepo constructs an ArtistRepo with the provided DB handle.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

// Create inserts a new artist. On success the artist's ID is populated and a
// follow-up SELECT fills the DB-default seeking fields. A duplicate name
// surfaces as ErrConstraint.
func (r *ArtistRepo) Create(ctx context.Context, a *Artist) error {
	const qInsert = `INSERT INTO artists (name, city, state, phone, genres, image_link, facebook_link, website)
	                 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert,
		a.Name, a.City, a.State, a.Phone, encodeGenres(a.Genres), a.ImageLink, a.FacebookLink, a.Website)
	if err != nil {
		return classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return classify(err)
	}
	a.ID = uint64(id)

	const qSelect = `SELECT is_seeking_venue, seeking_description FROM artists WHERE id = ?`
	if err := r.db.QueryRowContext(ctx, qSelect, a.ID).Scan(&a.SeekingVenue, &a.SeekingDescription); err != nil {
		return classify(err)
	}
	return nil
}

// GetByID fetches an artist by its ID. It returns ErrArtistNotFound when no
// row matches.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*Artist, error) {
	const q = `SELECT id, name, city, state, phone, genres, image_link, facebook_link, website,
	                  is_seeking_venue, seeking_description
	           FROM artists WHERE id = ?`
	var (
		a      Artist
		genres string
		phone  sql.NullString
		fb     sql.NullString
		site   sql.NullString
	)
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&a.ID, &a.Name, &a.City, &a.State, &phone, &genres, &a.ImageLink, &fb, &site,
		&a.SeekingVenue, &a.SeekingDescription)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, classify(err)
	}
	a.Phone, a.FacebookLink, a.Website = phone.String, fb.String, site.String
	a.Genres = decodeGenres(genres)
	return &a, nil
}

// Update overwrites the mutable fields of an existing artist with the
// submitted values. The seeking fields are not part of the edit form.
func (r *ArtistRepo) Update(ctx context.Context, a *Artist) error {
	const q = `UPDATE artists
	           SET name = ?, city = ?, state = ?, phone = ?, genres = ?,
	               image_link = ?, facebook_link = ?, website = ?
	           WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q,
		a.Name, a.City, a.State, a.Phone, encodeGenres(a.Genres),
		a.ImageLink, a.FacebookLink, a.Website, a.ID)
	return classify(err)
}

// ListNames returns every artist ordered by name, projected to id and name.
func (r *ArtistRepo) ListNames(ctx context.Context) ([]ArtistRef, error) {
	const q = `SELECT id, name FROM artists ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var out []ArtistRef
	for rows.Next() {
		var a ArtistRef
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, classify(err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// SearchByName returns the artists whose name contains term, matched without
// regard to case, each with the count of shows starting strictly after now.
// An empty term matches every artist.
func (r *ArtistRepo) SearchByName(ctx context.Context, term string, now time.Time) ([]ArtistSummary, error) {
	const q = `SELECT a.id, a.name, COUNT(s.id)
	           FROM artists a
	           LEFT JOIN shows s ON s.artist_id = a.id AND s.start_time > ?
	           WHERE LOWER(a.name) LIKE CONCAT('%', LOWER(?), '%')
	           GROUP BY a.id, a.name
	           ORDER BY a.name ASC`
	rows, err := r.db.QueryContext(ctx, q, now, term)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var out []ArtistSummary
	for rows.Next() {
		var a ArtistSummary
		if err := rows.Scan(&a.ID, &a.Name, &a.UpcomingShows); err != nil {
			return nil, classify(err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return out, nil
}
