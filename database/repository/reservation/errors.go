package reservationRepo

import "errors"

// ErrRoomTaken is returned when the final pre-insert overlap check finds a
// conflicting reservation that appeared after the caller's availability check.
var ErrRoomTaken = errors.New("room already booked for the requested range")
