// File: services/scheduling/checker.go
package scheduling

import (
	"context"
	"fmt"
	"time"

	reservationRepo "github.com/RavinduBA/Checking-Checkout-Web-sub001/database/repository/reservation"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/models"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/utils"
)

// AvailabilityChecker answers whether a room is free for a requested stay.
// A repository failure propagates as an error and must be treated by callers
// as "unknown", never as "available".
type AvailabilityChecker interface {
	Check(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeID string) (models.AvailabilityResult, error)
	CheckDay(ctx context.Context, roomID string, date time.Time, excludeID string) (models.DayAvailability, error)
}

// DefaultAvailabilityChecker implements AvailabilityChecker over the
// reservation repository.
type DefaultAvailabilityChecker struct {
	Repo reservationRepo.ReservationRepository
}

// Check fetches all non-cancelled reservations for roomID overlapping the
// half-open [checkIn, checkOut) range, excluding excludeID (the reservation
// currently being edited must not conflict with itself).
func (c *DefaultAvailabilityChecker) Check(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeID string) (models.AvailabilityResult, error) {
	checkIn = utils.NormalizeDate(checkIn)
	checkOut = utils.NormalizeDate(checkOut)
	if err := ValidateRange(checkIn, checkOut); err != nil {
		return models.AvailabilityResult{}, err
	}

	conflicts, err := c.Repo.ListByRoomAndRange(ctx, roomID, checkIn, checkOut, excludeID)
	if err != nil {
		return models.AvailabilityResult{}, fmt.Errorf("availability check for room %s failed: %w", roomID, err)
	}

	return models.AvailabilityResult{
		IsAvailable: len(conflicts) == 0,
		Conflicts:   conflicts,
	}, nil
}

// CheckDay is the single-day variant used by the cache filler: the stay is
// [date, date+1).
func (c *DefaultAvailabilityChecker) CheckDay(ctx context.Context, roomID string, date time.Time, excludeID string) (models.DayAvailability, error) {
	date = utils.NormalizeDate(date)
	result, err := c.Check(ctx, roomID, date, date.AddDate(0, 0, 1), excludeID)
	if err != nil {
		return models.DayAvailability{}, err
	}
	return models.DayAvailability{
		Date:          date,
		IsAvailable:   result.IsAvailable,
		ConflictCount: len(result.Conflicts),
	}, nil
}
