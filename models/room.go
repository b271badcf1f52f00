package models

import "time"

// Room is a single bookable physical room. It is treated as a read-only
// snapshot during a scheduling query; edits go through the room repository.
type Room struct {
	ID          string    `bson:"id" json:"id"`
	LocationID  string    `bson:"location_id" json:"locationId"`
	RoomNumber  string    `bson:"room_number" json:"roomNumber"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	BasePrice   float64   `bson:"base_price" json:"basePrice"` // price per night
	MaxGuests   int       `bson:"max_guests" json:"maxGuests"`
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}
