package models

import "time"

// DayAvailability is one cached per-room per-day availability entry.
// It is derived, never authoritative: the reservation table owns the truth.
type DayAvailability struct {
	Date          time.Time `json:"date"`
	IsAvailable   bool      `json:"isAvailable"`
	ConflictCount int       `json:"conflictCount"`
}

// AvailabilityResult is the outcome of a range availability check.
type AvailabilityResult struct {
	IsAvailable bool          `json:"isAvailable"`
	Conflicts   []Reservation `json:"conflicts"`
}

// Alternatives holds the rooms free for the originally requested range,
// partitioned by whether they share the failed room's location. Ordering
// within each partition follows room number.
type Alternatives struct {
	SameLocation   []Room `json:"sameLocation"`
	OtherLocations []Room `json:"otherLocations"`
}
