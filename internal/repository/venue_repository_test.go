package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVenueCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO venues").
		WithArgs("The Spot", "Austin", "TX", "1 Main St", "555-0100", "Jazz,Blues", "http://x/img.png", "", "").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery("SELECT is_seeking_talent, seeking_description FROM venues").
		WillReturnRows(sqlmock.NewRows([]string{"is_seeking_talent", "seeking_description"}).
			AddRow(true, "Looking for talented performers!"))

	repo := NewVenueRepo(db)
	v := &Venue{
		Name:      "The Spot",
		City:      "Austin",
		State:     "TX",
		Address:   "1 Main St",
		Phone:     "555-0100",
		Genres:    []string{"Jazz", "Blues"},
		ImageLink: "http://x/img.png",
	}
	require.NoError(t, repo.Create(context.Background(), v))

	assert.Equal(t, uint64(7), v.ID)
	assert.True(t, v.SeekingTalent)
	assert.Equal(t, "Looking for talented performers!", v.SeekingDescription)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cols := []string{
		"id", "name", "city", "state", "address", "phone", "genres",
		"image_link", "facebook_link", "website", "is_seeking_talent", "seeking_description",
	}
	mock.ExpectQuery("FROM venues WHERE id").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			7, "The Spot", "Austin", "TX", "1 Main St", "555-0100", "Jazz,Blues",
			"http://x/img.png", nil, nil, true, "Looking for talented performers!"))

	repo := NewVenueRepo(db)
	v, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "The Spot", v.Name)
	assert.Equal(t, []string{"Jazz", "Blues"}, v.Genres)
	assert.Equal(t, "555-0100", v.Phone)
	assert.Empty(t, v.FacebookLink) // NULL column reads back as empty string
	assert.Empty(t, v.Website)
}

func TestVenueGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM venues WHERE id").WillReturnError(sql.ErrNoRows)

	repo := NewVenueRepo(db)
	_, err = repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestVenueDelete(t *testing.T) {
	t.Run("existing row", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("DELETE FROM venues").WillReturnResult(sqlmock.NewResult(0, 1))
		assert.NoError(t, NewVenueRepo(db).Delete(context.Background(), 7))
	})

	t.Run("missing row", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("DELETE FROM venues").WillReturnResult(sqlmock.NewResult(0, 0))
		assert.ErrorIs(t, NewVenueRepo(db).Delete(context.Background(), 99), ErrVenueNotFound)
	})
}

func TestVenueSearchByName(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("LIKE CONCAT").
		WithArgs(now, "music").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "state", "count"}).
			AddRow(3, "Music Hall", "New York", "NY", 2))

	out, err := NewVenueRepo(db).SearchByName(context.Background(), "music", now)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Music Hall", out[0].Name)
	assert.Equal(t, uint64(2), out[0].UpcomingShows)
}

func TestVenueUpdateConstraintFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE venues").
		WillReturnError(&mysql.MySQLError{Number: 1048, Message: "Column 'name' cannot be null"})

	err = NewVenueRepo(db).Update(context.Background(), &Venue{ID: 7})
	assert.ErrorIs(t, err, ErrConstraint)
}

func TestGroupByArea(t *testing.T) {
	venues := []VenueSummary{
		{ID: 1, Name: "Blue Note", City: "New York", State: "NY", UpcomingShows: 2},
		{ID: 2, Name: "Mercury Lounge", City: "New York", State: "NY"},
		{ID: 3, Name: "The Spot", City: "Austin", State: "TX"},
	}

	areas := GroupByArea(venues)
	require.Len(t, areas, 2)

	assert.Equal(t, "New York", areas[0].City)
	assert.Equal(t, "NY", areas[0].State)
	require.Len(t, areas[0].Venues, 2)
	assert.Equal(t, uint64(2), areas[0].Venues[0].UpcomingShows)

	// A venue with no shows lands in exactly one group with a zero count.
	assert.Equal(t, "Austin", areas[1].City)
	require.Len(t, areas[1].Venues, 1)
	assert.Equal(t, uint64(0), areas[1].Venues[0].UpcomingShows)
}

func TestGroupByAreaEmpty(t *testing.T) {
	assert.Empty(t, GroupByArea(nil))
}
