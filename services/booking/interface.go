// File: services/booking/interface.go
package booking

import (
	"context"
	"time"

	reservationRepo "github.com/RavinduBA/Checking-Checkout-Web-sub001/database/repository/reservation"
	roomRepo "github.com/RavinduBA/Checking-Checkout-Web-sub001/database/repository/room"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/models"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/services/calendar"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/services/scheduling"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/services/tasks"
)

// CreateReservationInput carries everything needed to book a stay.
type CreateReservationInput struct {
	RoomID       string    `json:"roomId"`
	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`
	Status       string    `json:"status,omitempty"` // tentative, pending or confirmed; defaults to pending
	GuestName    string    `json:"guestName"`
	GuestEmail   string    `json:"guestEmail,omitempty"`
	GuestPhone   string    `json:"guestPhone,omitempty"`
	Adults       int       `json:"adults"`
	Children     int       `json:"children"`
	Notes        string    `json:"notes,omitempty"`

	// Force books into a conflicting slot anyway. This is an explicit
	// operator decision made above the engine; the engine itself only ever
	// reports truth.
	Force bool `json:"force,omitempty"`
}

// BookingService is the write-side workflow around the scheduling engine.
type BookingService interface {
	CreateReservation(ctx context.Context, input CreateReservationInput) (*models.Reservation, error)
	GetReservation(ctx context.Context, id string) (*models.Reservation, error)
	UpdateReservationDates(ctx context.Context, id string, checkIn, checkOut time.Time, force bool) (*models.Reservation, error)

	// Transition moves a reservation to a new status, enforcing the legal
	// state machine. Returns ErrInvalidTransition otherwise.
	Transition(ctx context.Context, id, status string) (*models.Reservation, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Reservations reservationRepo.ReservationRepository
	Rooms        roomRepo.RoomRepository
	Checker      scheduling.AvailabilityChecker
	Calendar     calendar.CalendarService
	Holds        tasks.HoldScheduler
	HoldTTL      time.Duration
}
