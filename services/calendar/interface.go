// File: services/calendar/interface.go
package calendar

import (
	"context"
	"time"

	reservationRepo "github.com/RavinduBA/Checking-Checkout-Web-sub001/database/repository/reservation"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/models"

	"github.com/go-redis/redis/v8"
)

// CalendarService assembles the month overview: the 42-cell grid, the laid
// out reservation bars and the per-day drill-down behind the "+N more"
// affordance.
type CalendarService interface {
	MonthView(ctx context.Context, locationID string, year int, month time.Month) (*models.CalendarLayout, error)

	// DayDetails lists every reservation touching the given day (not just the
	// overflowed ones), sorted by check-in.
	DayDetails(ctx context.Context, locationID string, day time.Time) ([]models.Reservation, error)

	// InvalidateRange drops cached month views intersecting the stay; the
	// booking workflow calls it after every write.
	InvalidateRange(ctx context.Context, locationID string, checkIn, checkOut time.Time)
}

// DefaultCalendarService implements CalendarService over the reservation
// repository with a short-TTL Redis cache in front of the layout computation.
type DefaultCalendarService struct {
	Reservations reservationRepo.ReservationRepository
	Cache        *redis.Client
	CacheTTL     time.Duration
	MaxLanes     int
}
