package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccidentReport is a single reported workplace accident.
// Immutable once persisted.
type AccidentReport struct {
	ID         uuid.UUID
	Category   string
	OccurredAt time.Time
	Latitude   float64
	Longitude  float64
	WorkID     string
	VictimID   string
	CreatedAt  time.Time
}

// OccurredAtFrom builds the occurrence timestamp from the wire format's
// [year, month, day] and [hour, minute, second] integer triples.
// Returns ErrValidation (via ValidationError) when the integers do not
// form a real calendar date or clock time.
func OccurredAtFrom(date [3]int, clock [3]int) (time.Time, error) {
	var errs []FieldError

	y, m, d := date[0], date[1], date[2]
	ts := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components, so a round trip
	// detects dates like February 30.
	if ts.Year() != y || ts.Month() != time.Month(m) || ts.Day() != d {
		errs = append(errs, FieldError{Field: "date", Message: "not a valid calendar date"})
	}

	h, min, s := clock[0], clock[1], clock[2]
	if h < 0 || h > 23 || min < 0 || min > 59 || s < 0 || s > 59 {
		errs = append(errs, FieldError{Field: "time", Message: "not a valid clock time"})
	}

	if len(errs) > 0 {
		return time.Time{}, NewValidationErrors(errs)
	}

	return time.Date(y, time.Month(m), d, h, min, s, 0, time.UTC), nil
}
