// File: database/repository/reservation/interface.go
package reservationRepo

import (
	"context"
	"time"

	"github.com/RavinduBA/Checking-Checkout-Web-sub001/database"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/models"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ReservationRepository is the read/write contract over the reservation table.
// The scheduling engine only uses the list methods; the booking workflow owns
// the mutating ones.
type ReservationRepository interface {
	// ListByRoomAndRange returns every non-cancelled reservation for roomID
	// whose half-open [check_in, check_out) range overlaps [start, end).
	// excludeID, when non-empty, drops that reservation from the result so an
	// edited reservation never conflicts with itself.
	ListByRoomAndRange(ctx context.Context, roomID string, start, end time.Time, excludeID string) ([]models.Reservation, error)

	// ListByRange returns every non-cancelled reservation intersecting
	// [start, end), optionally restricted to one location. Feeds the month view.
	ListByRange(ctx context.Context, locationID string, start, end time.Time) ([]models.Reservation, error)

	GetByID(ctx context.Context, id string) (*models.Reservation, error)

	// Create inserts a reservation, re-verifying the room is free right
	// before the write unless force is set. Returns ErrRoomTaken on a
	// lost race.
	Create(ctx context.Context, res *models.Reservation, force bool) error
	UpdateDates(ctx context.Context, id string, checkIn, checkOut time.Time) error
	UpdateStatus(ctx context.Context, id, status string) error

	// CancelIfTentative cancels the reservation only while it is still
	// tentative; used by the hold-expiry worker.
	CancelIfTentative(ctx context.Context, id string) (bool, error)
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo constructs a new MongoDB ReservationRepository.
func NewMongoReservationRepo() ReservationRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	repo := &mongoReservationRepo{
		coll: db.Collection("reservations"),
	}
	if err := repo.ensureIndexes(); err != nil {
		// Queries still work without the indexes, just slower.
		utils.GetLogger().Warn("reservation repo: failed to ensure indexes", zap.Error(err))
	}
	return repo
}
