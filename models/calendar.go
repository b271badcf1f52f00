package models

import "time"

// CalendarSegment is one contiguous horizontal bar piece for a reservation
// within a single displayed week-row. A stay crossing a week boundary
// produces one segment per row, because rows render independently.
type CalendarSegment struct {
	ReservationID string `json:"reservationId"`
	GridStart     int    `json:"gridStart"` // index into the 42-cell grid
	Span          int    `json:"span"`      // number of cells covered, always >= 1
	Lane          int    `json:"lane"`
	IsStart       bool   `json:"isStart"` // segment contains the check-in day
	IsEnd         bool   `json:"isEnd"`   // segment contains the last night
}

// CalendarCell is one of the 42 cells of a rendered month grid.
type CalendarCell struct {
	Date         time.Time `json:"date"`
	InMonth      bool      `json:"inMonth"` // false for leading/trailing adjacent-month days
	TouchedCount int       `json:"touchedCount"`
	Overflow     int       `json:"overflow"` // reservations beyond the rendered lane capacity
}

// CalendarLayout is the full layout for one month view. Lane assignment is
// ephemeral: it is valid for this render only and carries no identity.
type CalendarLayout struct {
	Year     int               `json:"year"`
	Month    int               `json:"month"`
	MaxLanes int               `json:"maxLanes"`
	Cells    []CalendarCell    `json:"cells"`
	Segments []CalendarSegment `json:"segments"`
}
