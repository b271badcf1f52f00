package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates indexes for fields frequently used in queries.
func (repo *mongoReservationRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{
			{Key: "room_id", Value: 1},
			{Key: "check_in_date", Value: 1},
			{Key: "check_out_date", Value: 1},
		}},
		{Keys: bson.D{
			{Key: "location_id", Value: 1},
			{Key: "check_in_date", Value: 1},
		}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := repo.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
