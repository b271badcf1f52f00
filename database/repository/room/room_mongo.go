// File: database/repository/room/room_mongo.go
package roomRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/RavinduBA/Checking-Checkout-Web-sub001/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *mongoRoomRepo) ListActive(ctx context.Context, locationID string) ([]models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"active": true}
	if locationID != "" {
		filter["location_id"] = locationID
	}

	cursor, err := repo.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "room_number", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("error decoding rooms: %w", err)
	}
	return rooms, nil
}

func (repo *mongoRoomRepo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var room models.Room
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&room); err != nil {
		return nil, fmt.Errorf("error fetching room %s: %w", id, err)
	}
	return &room, nil
}

func (repo *mongoRoomRepo) Create(ctx context.Context, room *models.Room) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if room.ID == "" {
		room.ID = uuid.New().String()
	}
	now := time.Now()
	room.CreatedAt = now
	room.UpdatedAt = now

	if _, err := repo.coll.InsertOne(ctx, room); err != nil {
		return fmt.Errorf("failed to insert room: %w", err)
	}
	return nil
}

func (repo *mongoRoomRepo) SetActive(ctx context.Context, id string, active bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"active": active, "updated_at": time.Now()}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update room active flag: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
