package scheduling

import "errors"

// ErrInvalidRange is returned when a requested stay has
// check-in >= check-out. It is rejected before any repository query.
var ErrInvalidRange = errors.New("check-in date must be before check-out date")
