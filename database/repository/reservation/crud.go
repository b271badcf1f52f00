// File: database/repository/reservation/crud.go
package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/RavinduBA/Checking-Checkout-Web-sub001/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (repo *mongoReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var res models.Reservation
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&res); err != nil {
		return nil, fmt.Errorf("error fetching reservation %s: %w", id, err)
	}
	return &res, nil
}

func (repo *mongoReservationRepo) Create(ctx context.Context, res *models.Reservation, force bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	now := time.Now()
	res.CreatedAt = now
	res.UpdatedAt = now

	// Last line of defense against a concurrent double-booking. The service
	// layer already checked availability; re-count here right before the
	// insert. A datastore-level exclusion constraint on (room_id, date range)
	// is the actual correctness boundary. Force is an explicit operator
	// decision made above this layer.
	if !force {
		count, err := repo.coll.CountDocuments(ctx, bson.M{
			"room_id":        res.RoomID,
			"status":         bson.M{"$ne": models.StatusCancelled},
			"check_in_date":  bson.M{"$lt": res.CheckOutDate},
			"check_out_date": bson.M{"$gt": res.CheckInDate},
		})
		if err != nil {
			return fmt.Errorf("failed to verify room %s is free: %w", res.RoomID, err)
		}
		if count > 0 {
			return ErrRoomTaken
		}
	}

	if _, err := repo.coll.InsertOne(ctx, res); err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}
	return nil
}

func (repo *mongoReservationRepo) UpdateDates(ctx context.Context, id string, checkIn, checkOut time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"check_in_date":  checkIn,
		"check_out_date": checkOut,
		"updated_at":     time.Now(),
	}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update reservation dates: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repo *mongoReservationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update reservation status: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repo *mongoReservationRepo) CancelIfTentative(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": models.StatusTentative}
	update := bson.M{"$set": bson.M{
		"status":     models.StatusCancelled,
		"updated_at": time.Now(),
	}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to expire tentative reservation %s: %w", id, err)
	}
	return res.ModifiedCount > 0, nil
}
