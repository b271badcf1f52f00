// File: services/booking/service.go
package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/RavinduBA/Checking-Checkout-Web-sub001/models"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/services/scheduling"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/utils"

	"go.uber.org/zap"
)

// CreateReservation books a stay. Availability is re-checked here, at write
// time, and once more inside the repository right before the insert: the
// read-side checker is a UX aid, not the consistency mechanism.
func (s *DefaultBookingService) CreateReservation(ctx context.Context, input CreateReservationInput) (*models.Reservation, error) {
	logger := utils.GetLogger()

	checkIn := utils.NormalizeDate(input.CheckInDate)
	checkOut := utils.NormalizeDate(input.CheckOutDate)
	if err := scheduling.ValidateRange(checkIn, checkOut); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = models.StatusPending
	}
	switch status {
	case models.StatusTentative, models.StatusPending, models.StatusConfirmed:
	default:
		return nil, fmt.Errorf("cannot create reservation with status %q", status)
	}

	room, err := s.Rooms.GetByID(ctx, input.RoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to load room %s: %w", input.RoomID, err)
	}
	if !room.Active {
		return nil, ErrRoomInactive
	}

	if !input.Force {
		result, err := s.Checker.Check(ctx, room.ID, checkIn, checkOut, "")
		if err != nil {
			// Unknown is not available: block the booking and let the caller retry.
			return nil, fmt.Errorf("could not verify availability: %w", err)
		}
		if !result.IsAvailable {
			return nil, &ConflictError{Conflicts: result.Conflicts}
		}
	} else {
		logger.Warn("force-booking into a possibly conflicting slot",
			zap.String("roomID", room.ID),
			zap.Time("checkIn", checkIn),
			zap.Time("checkOut", checkOut))
	}

	res := &models.Reservation{
		RoomID:       room.ID,
		LocationID:   room.LocationID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       status,
		GuestName:    input.GuestName,
		GuestEmail:   input.GuestEmail,
		GuestPhone:   input.GuestPhone,
		Adults:       input.Adults,
		Children:     input.Children,
		Notes:        input.Notes,
		TotalAmount:  room.BasePrice * float64(scheduling.Nights(checkIn, checkOut)),
	}

	if err := s.Reservations.Create(ctx, res, input.Force); err != nil {
		return nil, err
	}

	if status == models.StatusTentative && s.Holds != nil {
		if err := s.Holds.ScheduleExpiry(res.ID, time.Now().Add(s.HoldTTL)); err != nil {
			// The hold stays until manually released; booking itself succeeded.
			logger.Error("failed to schedule tentative hold expiry",
				zap.String("reservationID", res.ID), zap.Error(err))
		}
	}

	s.invalidateCalendar(ctx, res.LocationID, checkIn, checkOut)

	logger.Info("reservation created",
		zap.String("reservationID", res.ID),
		zap.String("roomID", res.RoomID),
		zap.String("status", res.Status))
	return res, nil
}

func (s *DefaultBookingService) GetReservation(ctx context.Context, id string) (*models.Reservation, error) {
	return s.Reservations.GetByID(ctx, id)
}

// UpdateReservationDates moves an existing stay. The reservation's own id is
// excluded from the availability check so it never conflicts with itself.
func (s *DefaultBookingService) UpdateReservationDates(ctx context.Context, id string, checkIn, checkOut time.Time, force bool) (*models.Reservation, error) {
	checkIn = utils.NormalizeDate(checkIn)
	checkOut = utils.NormalizeDate(checkOut)
	if err := scheduling.ValidateRange(checkIn, checkOut); err != nil {
		return nil, err
	}

	res, err := s.Reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.Status == models.StatusCheckedOut || res.Status == models.StatusCancelled {
		return nil, ErrReservationClosed
	}

	if !force {
		result, err := s.Checker.Check(ctx, res.RoomID, checkIn, checkOut, res.ID)
		if err != nil {
			return nil, fmt.Errorf("could not verify availability: %w", err)
		}
		if !result.IsAvailable {
			return nil, &ConflictError{Conflicts: result.Conflicts}
		}
	}

	oldIn, oldOut := res.CheckInDate, res.CheckOutDate
	if err := s.Reservations.UpdateDates(ctx, id, checkIn, checkOut); err != nil {
		return nil, err
	}
	res.CheckInDate = checkIn
	res.CheckOutDate = checkOut

	s.invalidateCalendar(ctx, res.LocationID, oldIn, oldOut)
	s.invalidateCalendar(ctx, res.LocationID, checkIn, checkOut)
	return res, nil
}

func (s *DefaultBookingService) Transition(ctx context.Context, id, status string) (*models.Reservation, error) {
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("unknown reservation status %q", status)
	}

	res, err := s.Reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(res.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, res.Status, status)
	}

	if err := s.Reservations.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	res.Status = status

	if status == models.StatusCancelled {
		// Cancelling frees the nights; the month view must reflect it.
		s.invalidateCalendar(ctx, res.LocationID, res.CheckInDate, res.CheckOutDate)
	}

	utils.GetLogger().Info("reservation status changed",
		zap.String("reservationID", id), zap.String("status", status))
	return res, nil
}

func (s *DefaultBookingService) invalidateCalendar(ctx context.Context, locationID string, checkIn, checkOut time.Time) {
	if s.Calendar != nil {
		s.Calendar.InvalidateRange(ctx, locationID, checkIn, checkOut)
	}
}
