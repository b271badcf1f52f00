// File: database/repository/room/interface.go
package roomRepo

import (
	"context"

	"github.com/RavinduBA/Checking-Checkout-Web-sub001/database"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RoomRepository is the read contract the scheduling engine needs over rooms,
// plus the small write surface used by property management.
type RoomRepository interface {
	// ListActive returns active rooms sorted by room number, optionally
	// restricted to one location.
	ListActive(ctx context.Context, locationID string) ([]models.Room, error)

	GetByID(ctx context.Context, id string) (*models.Room, error)
	Create(ctx context.Context, room *models.Room) error
	SetActive(ctx context.Context, id string, active bool) error
}

type mongoRoomRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomRepo constructs a new MongoDB RoomRepository.
func NewMongoRoomRepo() RoomRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoRoomRepo{
		coll: db.Collection("rooms"),
	}
}
