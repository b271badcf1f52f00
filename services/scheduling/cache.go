// File: services/scheduling/cache.go
package scheduling

import (
	"context"
	"sync"
	"time"

	"github.com/RavinduBA/Checking-Checkout-Web-sub001/models"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/utils"

	"go.uber.org/zap"
)

// DayCache memoizes per-day availability for one room selection within one
// picker session. The cache is scoped to a (room, exclude-id) pair: switching
// either starts a fresh cache. One session owns one instance; there is no
// cross-request sharing.
type DayCache struct {
	RoomID    string                            `json:"roomId"`
	ExcludeID string                            `json:"excludeId,omitempty"`
	Days      map[string]models.DayAvailability `json:"days"`
}

// NewDayCache constructs an empty cache for one room selection.
func NewDayCache(roomID, excludeID string) *DayCache {
	return &DayCache{
		RoomID:    roomID,
		ExcludeID: excludeID,
		Days:      make(map[string]models.DayAvailability),
	}
}

// Get returns the cached entry for date, or false when the day is unknown.
func (c *DayCache) Get(date time.Time) (models.DayAvailability, bool) {
	entry, ok := c.Days[utils.NormalizeDate(date).Format(utils.DateLayout)]
	return entry, ok
}

func (c *DayCache) put(entry models.DayAvailability) {
	c.Days[entry.Date.Format(utils.DateLayout)] = entry
}

// CacheFiller populates a DayCache for a visible month without re-querying
// the repository for every rendered day.
type CacheFiller struct {
	Checker AvailabilityChecker

	// BatchSize bounds how many per-day checks run concurrently; batches
	// themselves run sequentially.
	BatchSize int

	// SkipThreshold is the already-cached fraction of queryable days above
	// which a refill is skipped entirely. Bounds query volume when the user
	// pages back and forth across the same month.
	SkipThreshold float64

	// Today is injectable for tests; defaults to utils.Today.
	Today func() time.Time
}

// Fill populates cache for the given month and returns the number of per-day
// queries issued. Past days are always unavailable and are never queried.
// A failed day-query is recorded as unavailable with ConflictCount 1: the
// picker must never present an unverified day as bookable. On context
// cancellation the remaining days stay unknown and the context error is
// returned.
func (f *CacheFiller) Fill(ctx context.Context, cache *DayCache, year int, month time.Month) (int, error) {
	logger := utils.GetLogger()

	batchSize := f.BatchSize
	if batchSize <= 0 {
		batchSize = 7
	}
	threshold := f.SkipThreshold
	if threshold <= 0 {
		threshold = 0.80
	}
	today := utils.Today()
	if f.Today != nil {
		today = utils.NormalizeDate(f.Today())
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	var eligible []time.Time
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		if !d.Before(today) {
			eligible = append(eligible, d)
		}
	}
	if len(eligible) == 0 {
		return 0, nil
	}

	cached := 0
	var uncached []time.Time
	for _, d := range eligible {
		if _, ok := cache.Get(d); ok {
			cached++
		} else {
			uncached = append(uncached, d)
		}
	}
	if float64(cached)/float64(len(eligible)) >= threshold {
		logger.Debug("day cache mostly populated, skipping refill",
			zap.String("roomID", cache.RoomID),
			zap.Int("cached", cached),
			zap.Int("eligible", len(eligible)))
		return 0, nil
	}

	queried := 0
	for start := 0; start < len(uncached); start += batchSize {
		if err := ctx.Err(); err != nil {
			return queried, err
		}

		end := start + batchSize
		if end > len(uncached) {
			end = len(uncached)
		}
		batch := uncached[start:end]

		results := make([]models.DayAvailability, len(batch))
		resolved := make([]bool, len(batch))
		var wg sync.WaitGroup
		for i, day := range batch {
			wg.Add(1)
			go func(i int, day time.Time) {
				defer wg.Done()
				entry, err := f.Checker.CheckDay(ctx, cache.RoomID, day, cache.ExcludeID)
				if err != nil {
					if ctx.Err() != nil {
						// Cancelled, not failed: the day stays unknown so the
						// caller can retry, never falsely unavailable.
						return
					}
					// Fail-safe: an unverified day is never bookable. Logged so
					// systemic repository trouble stays visible to operators.
					logger.Warn("day availability query failed, marking day unavailable",
						zap.String("roomID", cache.RoomID),
						zap.Time("date", day),
						zap.Error(err))
					entry = models.DayAvailability{Date: day, IsAvailable: false, ConflictCount: 1}
				}
				results[i] = entry
				resolved[i] = true
			}(i, day)
		}
		wg.Wait()

		for i, entry := range results {
			if resolved[i] {
				cache.put(entry)
			}
		}
		queried += len(batch)
	}

	return queried, nil
}
