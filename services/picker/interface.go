// File: services/picker/interface.go
package picker

import (
	"context"
	"time"

	"github.com/RavinduBA/Checking-Checkout-Web-sub001/models"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/services/scheduling"

	"github.com/go-redis/redis/v8"
)

// SessionService manages date-picker sessions. A session owns exactly one
// day-availability cache for one (room, exclude-id) selection; switching
// either means starting a new session. Sessions live in Redis with a TTL, so
// staleness is bounded by the session lifetime.
type SessionService interface {
	StartSession(ctx context.Context, roomID, excludeID string) (string, error)

	// FillMonth loads the session cache, populates it for the given month and
	// saves it back. Returns the refreshed cache.
	FillMonth(ctx context.Context, sessionID string, year int, month time.Month) (*scheduling.DayCache, error)

	// DayStatuses reports the known per-day availability for the month. Past
	// days are always unavailable. Days the cache has no verdict for are
	// omitted: absent means unknown, never available.
	DayStatuses(ctx context.Context, sessionID string, year int, month time.Month) ([]models.DayAvailability, error)

	EndSession(ctx context.Context, sessionID string) error
}

// DefaultSessionService implements SessionService over Redis.
type DefaultSessionService struct {
	Filler *scheduling.CacheFiller
	Cache  *redis.Client
	TTL    time.Duration
}
