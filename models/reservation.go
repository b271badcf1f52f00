package models

import "time"

// Reservation statuses. A reservation moves
// tentative/pending -> confirmed -> checked_in -> checked_out,
// and may be cancelled any time before check-in.
const (
	StatusTentative  = "tentative"
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
)

// Reservation represents one stay of one room. The date range is the
// half-open interval [CheckInDate, CheckOutDate): the checkout day itself
// is free for a new check-in. Dates carry no time-of-day component and are
// normalized to midnight UTC.
type Reservation struct {
	ID           string    `bson:"id" json:"id"`
	RoomID       string    `bson:"room_id" json:"roomId"`
	LocationID   string    `bson:"location_id" json:"locationId"`
	CheckInDate  time.Time `bson:"check_in_date" json:"checkInDate"`
	CheckOutDate time.Time `bson:"check_out_date" json:"checkOutDate"`
	Status       string    `bson:"status" json:"status"`
	GuestName    string    `bson:"guest_name" json:"guestName"`
	GuestEmail   string    `bson:"guest_email,omitempty" json:"guestEmail,omitempty"`
	GuestPhone   string    `bson:"guest_phone,omitempty" json:"guestPhone,omitempty"`
	Adults       int       `bson:"adults" json:"adults"`
	Children     int       `bson:"children" json:"children"`
	TotalAmount  float64   `bson:"total_amount" json:"totalAmount"`
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// IsCancelled reports whether the reservation is excluded from all
// overlap computations.
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// ValidStatus reports whether s is one of the known reservation statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusTentative, StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	}
	return false
}

// statusTransitions maps a status to the statuses it may move to.
var statusTransitions = map[string][]string{
	StatusTentative: {StatusPending, StatusConfirmed, StatusCancelled},
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn: {StatusCheckedOut},
}

// CanTransition reports whether a reservation may move from one status
// to another. Checked-out and cancelled are terminal.
func CanTransition(from, to string) bool {
	for _, s := range statusTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
