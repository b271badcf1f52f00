// File: services/tasks/hold.go
package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeHoldExpire = "hold:expire"

// HoldExpirePayload identifies the tentative reservation to expire.
type HoldExpirePayload struct {
	ReservationID string `json:"reservationId"`
}

// NewHoldExpireTask builds the delayed task that releases a tentative hold.
func NewHoldExpireTask(payload HoldExpirePayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeHoldExpire, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// HoldScheduler schedules the expiry of a tentative reservation hold.
type HoldScheduler interface {
	ScheduleExpiry(reservationID string, fireAt time.Time) error
}

// AsynqHoldScheduler enqueues hold-expiry tasks on the shared queue.
type AsynqHoldScheduler struct {
	Client *asynq.Client
}

func (s *AsynqHoldScheduler) ScheduleExpiry(reservationID string, fireAt time.Time) error {
	task, opts, err := NewHoldExpireTask(HoldExpirePayload{ReservationID: reservationID}, fireAt)
	if err != nil {
		return err
	}
	_, err = s.Client.Enqueue(task, opts...)
	return err
}
