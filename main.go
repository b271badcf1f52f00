// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RavinduBA/Checking-Checkout-Web-sub001/config"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/cron"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/database"
	locationRepoPkg "github.com/RavinduBA/Checking-Checkout-Web-sub001/database/repository/location"
	reservationRepoPkg "github.com/RavinduBA/Checking-Checkout-Web-sub001/database/repository/reservation"
	roomRepoPkg "github.com/RavinduBA/Checking-Checkout-Web-sub001/database/repository/room"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/handlers"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/routes"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/services/booking"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/services/calendar"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/services/picker"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/services/scheduling"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/services/tasks"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()
	roomRepo := roomRepoPkg.NewMongoRoomRepo()
	locationRepo := locationRepoPkg.NewMongoLocationRepo()

	// services.
	checker := &scheduling.DefaultAvailabilityChecker{Repo: reservationRepo}
	finder := &scheduling.DefaultAlternativeFinder{
		Rooms:   roomRepo,
		Checker: checker,
	}
	filler := &scheduling.CacheFiller{
		Checker:       checker,
		BatchSize:     config.AppConfig.AvailabilityBatchSize,
		SkipThreshold: config.AppConfig.CacheSkipThreshold,
	}

	sessionService := &picker.DefaultSessionService{
		Filler: filler,
		Cache:  utils.GetSessionCacheClient(),
		TTL:    time.Duration(config.AppConfig.PickerSessionTTLMin) * time.Minute,
	}

	calendarService := &calendar.DefaultCalendarService{
		Reservations: reservationRepo,
		Cache:        utils.GetCacheClient(),
		CacheTTL:     time.Duration(config.AppConfig.CalendarCacheTTLSec) * time.Second,
		MaxLanes:     config.AppConfig.MaxCalendarLanes,
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	bookingService := &booking.DefaultBookingService{
		Reservations: reservationRepo,
		Rooms:        roomRepo,
		Checker:      checker,
		Calendar:     calendarService,
		Holds:        &tasks.AsynqHoldScheduler{Client: asynqClient},
		HoldTTL:      time.Duration(config.AppConfig.TentativeHoldTTLMin) * time.Minute,
	}

	// Background worker that releases expired tentative holds.
	cron.InitHoldWorker(reservationRepo, calendarService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Availability: &handlers.AvailabilityHandler{Checker: checker, Alternatives: finder},
		Picker:       &handlers.PickerHandler{Sessions: sessionService},
		Calendar:     &handlers.CalendarHandler{Calendar: calendarService},
		Reservations: &handlers.ReservationHandler{Bookings: bookingService},
		Inventory:    &handlers.InventoryHandler{Rooms: roomRepo, Locations: locationRepo},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
