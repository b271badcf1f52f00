// File: database/repository/location/interface.go
package locationRepo

import (
	"context"

	"github.com/RavinduBA/Checking-Checkout-Web-sub001/database"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// LocationRepository lists the operator's properties.
type LocationRepository interface {
	ListActive(ctx context.Context) ([]models.Location, error)
	GetByID(ctx context.Context, id string) (*models.Location, error)
}

type mongoLocationRepo struct {
	coll *mongo.Collection
}

// NewMongoLocationRepo constructs a new MongoDB LocationRepository.
func NewMongoLocationRepo() LocationRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoLocationRepo{
		coll: db.Collection("locations"),
	}
}
