// Package repository contains data access logic separated from HTTP handlers.
// This file defines the error kinds shared across repositories. Sentinel
// not-found values let handlers render the 404 page, while ErrConstraint and
// ErrUnavailable distinguish the two broad classes of mutation failure that
// the handlers otherwise collapse into one generic flash message.
package repository

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/go-sql-driver/mysql"
)

var (
	// ErrVenueNotFound is returned when a venue cannot be found in the DB.
	ErrVenueNotFound = errors.New("venue not found")
	// ErrArtistNotFound is returned when an artist cannot be found in the DB.
	ErrArtistNotFound = errors.New("artist not found")
	// ErrShowNotFound is returned when a show cannot be found in the DB.
	ErrShowNotFound = errors.New("show not found")

	// ErrConstraint wraps duplicate-key, foreign-key and NOT NULL violations.
	ErrConstraint = errors.New("constraint violation")
	// ErrUnavailable wraps connection-level failures talking to the store.
	ErrUnavailable = errors.New("store unavailable")
)

// MySQL server error numbers that signal a constraint violation.
const (
	erDupEntry        = 1062 // duplicate unique key
	erBadNullColumn   = 1048 // NOT NULL column set to NULL
	erRowIsReferenced = 1451 // parent row still referenced
	erNoReferencedRow = 1452 // foreign key points at a missing row
	erCheckViolated   = 3819 // CHECK constraint failed
)

// classify maps a driver error onto one of the error kinds above, keeping the
// original error in the chain. Errors that match no kind pass through
// unchanged so callers still see the raw failure.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case erDupEntry, erBadNullColumn, erRowIsReferenced, erNoReferencedRow, erCheckViolated:
			return fmt.Errorf("%w: %v", ErrConstraint, err)
		}
		return err
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
