// File: database/repository/location/location_mongo.go
package locationRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/RavinduBA/Checking-Checkout-Web-sub001/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *mongoLocationRepo) ListActive(ctx context.Context) ([]models.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"active": true}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch locations: %w", err)
	}
	defer cursor.Close(ctx)

	var locations []models.Location
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, fmt.Errorf("error decoding locations: %w", err)
	}
	return locations, nil
}

func (repo *mongoLocationRepo) GetByID(ctx context.Context, id string) (*models.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var loc models.Location
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&loc); err != nil {
		return nil, fmt.Errorf("error fetching location %s: %w", id, err)
	}
	return &loc, nil
}
