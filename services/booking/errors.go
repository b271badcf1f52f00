package booking

import (
	"errors"
	"fmt"

	"github.com/RavinduBA/Checking-Checkout-Web-sub001/models"
)

// ConflictError reports the reservations blocking a requested stay. The
// caller may present alternatives or, as an explicit operator decision,
// retry with force set.
type ConflictError struct {
	Conflicts []models.Reservation
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("room unavailable: %d conflicting reservation(s)", len(e.Conflicts))
}

var (
	ErrRoomInactive      = errors.New("room is not active")
	ErrInvalidTransition = errors.New("invalid reservation status transition")
	ErrReservationClosed = errors.New("reservation is checked out or cancelled")
)
