package astroglide

import (
	"time"

	"github.com/pkg/errors"
)

// ErrorKind tags a domain validation failure (spec §7), distinct from the
// "absent result" Option outcomes (ErrNoRiseNoSet, polar day/night) and
// from programming-error panics.
type ErrorKind int

const (
	InvalidLatitude ErrorKind = iota
	InvalidLongitude
	DateOutOfRange
	AmbiguousLocalTime
	InvalidDateRange
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidLatitude:
		return "invalid latitude"
	case InvalidLongitude:
		return "invalid longitude"
	case DateOutOfRange:
		return "date out of range"
	case AmbiguousLocalTime:
		return "ambiguous local time"
	case InvalidDateRange:
		return "invalid date range"
	default:
		return "unknown domain error"
	}
}

// DomainError wraps one of the tagged validation failures of spec §7.
// Callers distinguish kinds with errors.As and a type switch on Kind.
type DomainError struct {
	Kind ErrorKind
	msg  string
}

func (e *DomainError) Error() string {
	if e.msg == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.msg
}

func newDomainError(kind ErrorKind, msg string) error {
	return errors.WithStack(&DomainError{Kind: kind, msg: msg})
}

// minYear/maxYear bound the astronomical year range spec §4.8 allows the
// Calendar Aggregator to walk: [-999, +3000].
const (
	minYear = -999
	maxYear = 3000
)

// validateCoordinates returns a DomainError if lat/lon fall outside their
// valid ranges, per spec §7. Longitude excludes -180 (L ∈ (-180, +180]).
func validateCoordinates(loc Coordinates) error {
	if loc.Lat < -90 || loc.Lat > 90 {
		return newDomainError(InvalidLatitude, "latitude must be in [-90, 90]")
	}
	if loc.Lon <= -180 || loc.Lon > 180 {
		return newDomainError(InvalidLongitude, "longitude must be in (-180, 180]")
	}
	return nil
}

// validateDateRange returns a DomainError if the requested range is
// malformed, per spec §7/§4.8:
//   - InvalidDateRange if end's civil date precedes start's (a single
//     civil date, start == end, is allowed).
//   - DateOutOfRange if either endpoint's year falls outside [-999, +3000].
func validateDateRange(start, end time.Time) error {
	startYear, endYear := start.Year(), end.Year()
	if startYear < minYear || startYear > maxYear || endYear < minYear || endYear > maxYear {
		return newDomainError(DateOutOfRange, "year must be in [-999, 3000]")
	}

	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	startDate := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	if endDate.Before(startDate) {
		return newDomainError(InvalidDateRange, "end must not precede start")
	}
	return nil
}
