// File: services/scheduling/alternatives.go
package scheduling

import (
	"context"
	"fmt"
	"sync"
	"time"

	roomRepo "github.com/RavinduBA/Checking-Checkout-Web-sub001/database/repository/room"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/models"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/utils"
)

// AlternativeFinder searches other rooms for the identical date range when an
// availability check has failed. An empty result is legitimate ("searched and
// found none"); an error means the search itself failed.
type AlternativeFinder interface {
	FindAlternatives(ctx context.Context, failedRoomID string, checkIn, checkOut time.Time, excludeID string) (models.Alternatives, error)
}

// DefaultAlternativeFinder implements AlternativeFinder over the room
// repository and the availability checker.
type DefaultAlternativeFinder struct {
	Rooms   roomRepo.RoomRepository
	Checker AvailabilityChecker
}

// FindAlternatives checks every other active room for the requested range and
// partitions the free ones into same-location and other-location sets,
// preserving room-number ordering within each. This is a scatter/gather with
// no early-exit: the caller wants the full ranked set, not the first hit.
func (f *DefaultAlternativeFinder) FindAlternatives(ctx context.Context, failedRoomID string, checkIn, checkOut time.Time, excludeID string) (models.Alternatives, error) {
	checkIn = utils.NormalizeDate(checkIn)
	checkOut = utils.NormalizeDate(checkOut)
	if err := ValidateRange(checkIn, checkOut); err != nil {
		return models.Alternatives{}, err
	}

	failedRoom, err := f.Rooms.GetByID(ctx, failedRoomID)
	if err != nil {
		return models.Alternatives{}, fmt.Errorf("failed to load room %s: %w", failedRoomID, err)
	}

	rooms, err := f.Rooms.ListActive(ctx, "")
	if err != nil {
		return models.Alternatives{}, fmt.Errorf("failed to list candidate rooms: %w", err)
	}

	candidates := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.ID != failedRoomID {
			candidates = append(candidates, room)
		}
	}

	available := make([]bool, len(candidates))
	errs := make([]error, len(candidates))
	var wg sync.WaitGroup
	for i, room := range candidates {
		wg.Add(1)
		go func(i int, roomID string) {
			defer wg.Done()
			result, err := f.Checker.Check(ctx, roomID, checkIn, checkOut, excludeID)
			if err != nil {
				errs[i] = err
				return
			}
			available[i] = result.IsAvailable
		}(i, room.ID)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return models.Alternatives{}, fmt.Errorf("alternative search failed: %w", err)
		}
	}

	// Candidate order already follows room number; the partition preserves it.
	var alts models.Alternatives
	for i, room := range candidates {
		if !available[i] {
			continue
		}
		if room.LocationID == failedRoom.LocationID {
			alts.SameLocation = append(alts.SameLocation, room)
		} else {
			alts.OtherLocations = append(alts.OtherLocations, room)
		}
	}
	return alts, nil
}
