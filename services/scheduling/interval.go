// File: services/scheduling/interval.go
package scheduling

import (
	"math"
	"time"
)

// Overlaps reports whether the half-open date intervals [aStart, aEnd) and
// [bStart, bEnd) share at least one night. Touching endpoints do not
// overlap: a checkout on day D and a new check-in on day D never conflict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Nights returns the number of nights between check-in and check-out,
// minimum 1. Used for pricing and display, never as an availability decision.
func Nights(checkIn, checkOut time.Time) int {
	n := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if n < 1 {
		return 1
	}
	return n
}

// ValidateRange rejects an inverted or empty stay before any query is issued.
func ValidateRange(checkIn, checkOut time.Time) error {
	if !checkIn.Before(checkOut) {
		return ErrInvalidRange
	}
	return nil
}
