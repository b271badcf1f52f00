// File: services/scheduling/calendar.go
package scheduling

import (
	"sort"
	"time"

	"github.com/RavinduBA/Checking-Checkout-Web-sub001/models"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/utils"
)

// GridCells is the fixed size of a rendered month grid: 6 week-rows of 7
// columns, including leading/trailing days from adjacent months.
const GridCells = 42

// GridCols is the number of columns per week-row.
const GridCols = 7

// MonthGrid returns the 42 visible days for a month view, starting on the
// Sunday on or before the first of the month.
func MonthGrid(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	grid := make([]time.Time, GridCells)
	for i := range grid {
		grid[i] = start.AddDate(0, 0, i)
	}
	return grid
}

// ComputeLayout lays out the given reservations on the grid as non-overlapping
// horizontal bars.
//
// Each reservation's half-open [check-in, check-out) range is walked day by
// day; a segment closes at every week boundary and at the stay's end, so no
// segment ever crosses a row boundary. Every segment spans at least one cell
// and never extends past the check-out date.
//
// Lanes are assigned greedily, first-fit over maxLanes lanes, processing
// reservations in a stable order (check-in ascending, then id) so the layout
// is reproducible for the same input set. A segment that fits no lane is not
// drawn; every day it would have covered accumulates an overflow count
// instead. Greedy coloring can use more lanes than strictly necessary in
// pathological overlap patterns, but it never produces a false non-overlap.
func ComputeLayout(reservations []models.Reservation, grid []time.Time, maxLanes int) models.CalendarLayout {
	if maxLanes < 1 {
		maxLanes = 1
	}

	active := make([]models.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if !r.IsCancelled() {
			active = append(active, r)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		if !active[i].CheckInDate.Equal(active[j].CheckInDate) {
			return active[i].CheckInDate.Before(active[j].CheckInDate)
		}
		return active[i].ID < active[j].ID
	})

	gridStart := utils.NormalizeDate(grid[0])
	gridEnd := utils.NormalizeDate(grid[len(grid)-1]) // last visible day, inclusive

	occupied := make([][]bool, maxLanes)
	for l := range occupied {
		occupied[l] = make([]bool, len(grid))
	}
	touched := make([]int, len(grid))
	overflow := make([]int, len(grid))

	var segments []models.CalendarSegment
	for _, r := range active {
		checkIn := utils.NormalizeDate(r.CheckInDate)
		lastNight := utils.NormalizeDate(r.CheckOutDate).AddDate(0, 0, -1)

		if lastNight.Before(gridStart) || checkIn.After(gridEnd) {
			continue
		}

		startIdx := dayIndex(gridStart, maxDate(checkIn, gridStart))
		endIdx := dayIndex(gridStart, minDate(lastNight, gridEnd))

		for i := startIdx; i <= endIdx; i++ {
			touched[i]++
		}

		segStart := startIdx
		for i := startIdx; i <= endIdx; i++ {
			if i%GridCols == GridCols-1 || i == endIdx {
				seg := models.CalendarSegment{
					ReservationID: r.ID,
					GridStart:     segStart,
					Span:          i - segStart + 1,
					IsStart:       segStart == startIdx && !checkIn.Before(gridStart),
					IsEnd:         i == endIdx && !lastNight.After(gridEnd),
				}
				seg.Lane = assignLane(occupied, segStart, i)
				if seg.Lane >= 0 {
					segments = append(segments, seg)
				} else {
					for j := segStart; j <= i; j++ {
						overflow[j]++
					}
				}
				segStart = i + 1
			}
		}
	}

	cells := make([]models.CalendarCell, len(grid))
	for i, day := range grid {
		cells[i] = models.CalendarCell{
			Date:         day,
			TouchedCount: touched[i],
			Overflow:     overflow[i],
		}
	}

	return models.CalendarLayout{
		MaxLanes: maxLanes,
		Cells:    cells,
		Segments: segments,
	}
}

// assignLane returns the first lane free across the whole [start, end] span,
// marking it occupied, or -1 when every lane collides somewhere in the span.
func assignLane(occupied [][]bool, start, end int) int {
	for lane := range occupied {
		free := true
		for i := start; i <= end; i++ {
			if occupied[lane][i] {
				free = false
				break
			}
		}
		if free {
			for i := start; i <= end; i++ {
				occupied[lane][i] = true
			}
			return lane
		}
	}
	return -1
}

// ReservationsTouching returns every non-cancelled reservation whose stay
// covers the given day, sorted by check-in then id. Backs the "+N more"
// drill-down, which lists all reservations on the day, not just the
// overflowed ones.
func ReservationsTouching(reservations []models.Reservation, day time.Time) []models.Reservation {
	day = utils.NormalizeDate(day)
	next := day.AddDate(0, 0, 1)

	var result []models.Reservation
	for _, r := range reservations {
		if r.IsCancelled() {
			continue
		}
		if Overlaps(utils.NormalizeDate(r.CheckInDate), utils.NormalizeDate(r.CheckOutDate), day, next) {
			result = append(result, r)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].CheckInDate.Equal(result[j].CheckInDate) {
			return result[i].CheckInDate.Before(result[j].CheckInDate)
		}
		return result[i].ID < result[j].ID
	})
	return result
}

func dayIndex(gridStart, day time.Time) int {
	return int(day.Sub(gridStart).Hours() / 24)
}

func maxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
