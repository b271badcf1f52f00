// File: services/picker/session.go
package picker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/RavinduBA/Checking-Checkout-Web-sub001/models"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/services/scheduling"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a picker session is missing or expired.
var ErrSessionNotFound = errors.New("picker session not found or expired")

const sessionKeyPrefix = "picker:"

type sessionRecord struct {
	ID        string               `json:"id"`
	Cache     *scheduling.DayCache `json:"cache"`
	CreatedAt time.Time            `json:"createdAt"`
}

func (s *DefaultSessionService) StartSession(ctx context.Context, roomID, excludeID string) (string, error) {
	record := sessionRecord{
		ID:        uuid.New().String(),
		Cache:     scheduling.NewDayCache(roomID, excludeID),
		CreatedAt: time.Now(),
	}
	if err := s.save(ctx, &record); err != nil {
		return "", err
	}
	return record.ID, nil
}

func (s *DefaultSessionService) FillMonth(ctx context.Context, sessionID string, year int, month time.Month) (*scheduling.DayCache, error) {
	record, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if _, err := s.Filler.Fill(ctx, record.Cache, year, month); err != nil {
		// The cache keeps whatever was resolved before the interruption;
		// persist that so a retry picks up where it left off.
		if saveErr := s.save(ctx, record); saveErr != nil {
			return nil, saveErr
		}
		return nil, err
	}
	if err := s.save(ctx, record); err != nil {
		return nil, err
	}
	return record.Cache, nil
}

func (s *DefaultSessionService) DayStatuses(ctx context.Context, sessionID string, year int, month time.Month) ([]models.DayAvailability, error) {
	record, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	today := utils.Today()
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	var statuses []models.DayAvailability
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		if d.Before(today) {
			statuses = append(statuses, models.DayAvailability{Date: d, IsAvailable: false})
			continue
		}
		if entry, ok := record.Cache.Get(d); ok {
			statuses = append(statuses, entry)
		}
	}
	return statuses, nil
}

func (s *DefaultSessionService) EndSession(ctx context.Context, sessionID string) error {
	return s.Cache.Del(ctx, sessionKeyPrefix+sessionID).Err()
}

func (s *DefaultSessionService) load(ctx context.Context, sessionID string) (*sessionRecord, error) {
	data, err := s.Cache.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load picker session: %w", err)
	}

	var record sessionRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("failed to parse picker session: %w", err)
	}
	if record.Cache == nil {
		return nil, ErrSessionNotFound
	}
	if record.Cache.Days == nil {
		record.Cache.Days = make(map[string]models.DayAvailability)
	}
	return &record, nil
}

func (s *DefaultSessionService) save(ctx context.Context, record *sessionRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal picker session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKeyPrefix+record.ID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store picker session: %w", err)
	}
	return nil
}
