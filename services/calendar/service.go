// File: services/calendar/service.go
package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/RavinduBA/Checking-Checkout-Web-sub001/models"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/services/scheduling"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func monthKey(locationID string, year int, month time.Month) string {
	return fmt.Sprintf("calendar:%s:%04d-%02d", locationID, year, int(month))
}

func (s *DefaultCalendarService) MonthView(ctx context.Context, locationID string, year int, month time.Month) (*models.CalendarLayout, error) {
	logger := utils.GetLogger()
	key := monthKey(locationID, year, month)

	if s.Cache != nil {
		data, err := s.Cache.Get(ctx, key).Result()
		if err == nil {
			var layout models.CalendarLayout
			if jsonErr := json.Unmarshal([]byte(data), &layout); jsonErr == nil {
				return &layout, nil
			}
		} else if err != redis.Nil {
			// Cache trouble never blocks the month view.
			logger.Warn("calendar cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	grid := scheduling.MonthGrid(year, month)
	gridEnd := grid[len(grid)-1].AddDate(0, 0, 1)
	reservations, err := s.Reservations.ListByRange(ctx, locationID, grid[0], gridEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load reservations for month view: %w", err)
	}

	layout := scheduling.ComputeLayout(reservations, grid, s.MaxLanes)
	layout.Year = year
	layout.Month = int(month)
	for i := range layout.Cells {
		layout.Cells[i].InMonth = layout.Cells[i].Date.Month() == month
	}

	if s.Cache != nil {
		if data, jsonErr := json.Marshal(layout); jsonErr == nil {
			if err := s.Cache.Set(ctx, key, data, s.CacheTTL).Err(); err != nil {
				logger.Warn("calendar cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return &layout, nil
}

func (s *DefaultCalendarService) DayDetails(ctx context.Context, locationID string, day time.Time) ([]models.Reservation, error) {
	day = utils.NormalizeDate(day)
	reservations, err := s.Reservations.ListByRange(ctx, locationID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to load reservations for day: %w", err)
	}
	return scheduling.ReservationsTouching(reservations, day), nil
}

func (s *DefaultCalendarService) InvalidateRange(ctx context.Context, locationID string, checkIn, checkOut time.Time) {
	if s.Cache == nil {
		return
	}

	lastNight := utils.NormalizeDate(checkOut).AddDate(0, 0, -1)
	// A month view shows up to a week of adjacent-month days on each side, so
	// invalidate one month beyond the stay in both directions.
	start := utils.NormalizeDate(checkIn).AddDate(0, -1, 0)
	end := lastNight.AddDate(0, 1, 0)

	var keys []string
	for d := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC); !d.After(end); d = d.AddDate(0, 1, 0) {
		keys = append(keys, monthKey(locationID, d.Year(), d.Month()))
		if locationID != "" {
			// The all-locations view shows this stay too.
			keys = append(keys, monthKey("", d.Year(), d.Month()))
		}
	}
	if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("calendar cache invalidation failed", zap.Error(err))
	}
}
