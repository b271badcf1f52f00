// File: database/repository/reservation/queries.go
package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/RavinduBA/Checking-Checkout-Web-sub001/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *mongoReservationRepo) ListByRoomAndRange(ctx context.Context, roomID string, start, end time.Time, excludeID string) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Half-open overlap: existing.check_in < end && existing.check_out > start.
	// Touching endpoints (checkout day == new check-in day) do not match.
	filter := bson.M{
		"room_id":        roomID,
		"status":         bson.M{"$ne": models.StatusCancelled},
		"check_in_date":  bson.M{"$lt": end},
		"check_out_date": bson.M{"$gt": start},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}

	cursor, err := repo.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "check_in_date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations for room %s: %w", roomID, err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return reservations, nil
}

func (repo *mongoReservationRepo) ListByRange(ctx context.Context, locationID string, start, end time.Time) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"status":         bson.M{"$ne": models.StatusCancelled},
		"check_in_date":  bson.M{"$lt": end},
		"check_out_date": bson.M{"$gt": start},
	}
	if locationID != "" {
		filter["location_id"] = locationID
	}

	cursor, err := repo.coll.Find(ctx, filter, options.Find().SetSort(bson.D{
		{Key: "check_in_date", Value: 1},
		{Key: "id", Value: 1},
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations in range: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return reservations, nil
}
