// This file defines the Venue model and repository methods for venues. A
// Venue is a physical location that can host performances; deleting one
// cascades to its shows via the schema's foreign key.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Venue represents a venue row. Phone, FacebookLink and Website are optional
// and stored as empty strings when absent. Genres is an ordered set of tags.
type Venue struct {
	ID                 uint64
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	Genres             []string
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingTalent      bool
	SeekingDescription string
}

// VenueSummary is the projection used by the list and search pages: the
// venue's identity plus a freshly computed count of its upcoming shows.
type VenueSummary struct {
	ID            uint64
	Name          string
	City          string
	State         string
	UpcomingShows uint64
}

// Area groups the venues of one (city, state) pair for the list page.
type Area struct {
	City   string
	State  string
	Venues []VenueSummary
}

// VenueRepo encapsulates all database queries related to venues.
type VenueRepo struct {
	db *sql.DB
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// Create inserts a new venue. On success the venue's ID is populated with the
// generated value and a follow-up SELECT fills the DB-default seeking fields.
func (r *VenueRepo) Create(ctx context.Context, v *Venue) error {
	const qInsert = `INSERT INTO venues (name, city, state, address, phone, genres, image_link, facebook_link, website)
	                 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert,
		v.Name, v.City, v.State, v.Address, v.Phone, encodeGenres(v.Genres), v.ImageLink, v.FacebookLink, v.Website)
	if err != nil {
		return classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return classify(err)
	}
	v.ID = uint64(id)

	const qSelect = `SELECT is_seeking_talent, seeking_description FROM venues WHERE id = ?`
	if err := r.db.QueryRowContext(ctx, qSelect, v.ID).Scan(&v.SeekingTalent, &v.SeekingDescription); err != nil {
		return classify(err)
	}
	return nil
}

// GetByID fetches a venue by its ID. It returns ErrVenueNotFound when no row
// matches.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*Venue, error) {
	const q = `SELECT id, name, city, state, address, phone, genres, image_link, facebook_link, website,
	                  is_seeking_talent, seeking_description
	           FROM venues WHERE id = ?`
	var (
		v      Venue
		genres string
		phone  sql.NullString
		fb     sql.NullString
		site   sql.NullString
	)
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &phone, &genres, &v.ImageLink, &fb, &site,
		&v.SeekingTalent, &v.SeekingDescription)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, classify(err)
	}
	v.Phone, v.FacebookLink, v.Website = phone.String, fb.String, site.String
	v.Genres = decodeGenres(genres)
	return &v, nil
}

// Update overwrites the mutable fields of an existing venue with the
// submitted values. The seeking fields are not part of the edit form and are
// left untouched. A zero rows-affected result is not an error: MySQL reports
// zero when the submitted values equal the stored ones.
func (r *VenueRepo) Update(ctx context.Context, v *Venue) error {
	const q = `UPDATE venues
	           SET name = ?, city = ?, state = ?, address = ?, phone = ?, genres = ?,
	               image_link = ?, facebook_link = ?, website = ?
	           WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q,
		v.Name, v.City, v.State, v.Address, v.Phone, encodeGenres(v.Genres),
		v.ImageLink, v.FacebookLink, v.Website, v.ID)
	return classify(err)
}

// Delete removes a venue. The schema's ON DELETE CASCADE removes its shows in
// the same statement. ErrVenueNotFound is returned when no row was deleted.
func (r *VenueRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM venues WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return classify(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrVenueNotFound
	}
	return nil
}

// ListAll returns every venue ordered by state, city and name, each with the
// count of its shows starting strictly after now.
func (r *VenueRepo) ListAll(ctx context.Context, now time.Time) ([]VenueSummary, error) {
	const q = `SELECT v.id, v.name, v.city, v.state, COUNT(s.id)
	           FROM venues v
	           LEFT JOIN shows s ON s.venue_id = v.id AND s.start_time > ?
	           GROUP BY v.id, v.name, v.city, v.state
	           ORDER BY v.state ASC, v.city ASC, v.name ASC`
	return r.querySummaries(ctx, q, now)
}

// SearchByName returns the venues whose name contains term, matched without
// regard to case. An empty term matches every venue.
func (r *VenueRepo) SearchByName(ctx context.Context, term string, now time.Time) ([]VenueSummary, error) {
	const q = `SELECT v.id, v.name, v.city, v.state, COUNT(s.id)
	           FROM venues v
	           LEFT JOIN shows s ON s.venue_id = v.id AND s.start_time > ?
	           WHERE LOWER(v.name) LIKE CONCAT('%', LOWER(?), '%')
	           GROUP BY v.id, v.name, v.city, v.state
	           ORDER BY v.name ASC`
	return r.querySummaries(ctx, q, now, term)
}

func (r *VenueRepo) querySummaries(ctx context.Context, q string, now time.Time, args ...any) ([]VenueSummary, error) {
	qArgs := append([]any{now}, args...)
	rows, err := r.db.QueryContext(ctx, q, qArgs...)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var out []VenueSummary
	for rows.Next() {
		var v VenueSummary
		if err := rows.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.UpcomingShows); err != nil {
			return nil, classify(err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// GroupByArea folds venues ordered by state, city and name into one Area per
// distinct (city, state) pair, preserving the input order of both the areas
// and their members.
func GroupByArea(venues []VenueSummary) []Area {
	var areas []Area
	for _, v := range venues {
		n := len(areas)
		if n == 0 || areas[n-1].City != v.City || areas[n-1].State != v.State {
			areas = append(areas, Area{City: v.City, State: v.State})
			n++
		}
		areas[n-1].Venues = append(areas[n-1].Venues, v)
	}
	return areas
}
