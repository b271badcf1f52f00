package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/RavinduBA/Checking-Checkout-Web-sub001/config"
	reservationRepo "github.com/RavinduBA/Checking-Checkout-Web-sub001/database/repository/reservation"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/services/calendar"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitHoldWorker runs the async worker in background. It consumes the
// hold-expiry queue and releases tentative reservations whose hold ran out.
func InitHoldWorker(reservations reservationRepo.ReservationRepository, cal calendar.CalendarService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeHoldExpire, handleHoldExpireTask(reservations, cal))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[HoldWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[HoldWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[HoldWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleHoldExpireTask(reservations reservationRepo.ReservationRepository, cal calendar.CalendarService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.HoldExpirePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[HoldHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		// Only still-tentative reservations are released; anything confirmed
		// or already cancelled in the meantime is left alone.
		cancelled, err := reservations.CancelIfTentative(ctx, p.ReservationID)
		if err != nil {
			log.Printf("[HoldHandler] ❌ Failed to expire hold %s: %v", p.ReservationID, err)
			return err
		}
		if !cancelled {
			log.Printf("[HoldHandler] Hold %s already resolved, nothing to do", p.ReservationID)
			return nil
		}

		log.Printf("[HoldHandler] ⏰ Tentative hold %s expired and was released", p.ReservationID)

		if cal != nil {
			if res, err := reservations.GetByID(ctx, p.ReservationID); err == nil {
				cal.InvalidateRange(ctx, res.LocationID, res.CheckInDate, res.CheckOutDate)
			}
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[HoldWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
