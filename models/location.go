package models

import "time"

// Location represents one property operated by the lodging company.
// Rooms are always attached to exactly one location.
type Location struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Address   string    `bson:"address" json:"address"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Currency  string    `bson:"currency" json:"currency"` // ISO 4217 code used for display only
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
