package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RavinduBA/Checking-Checkout-Web-sub001/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fakeReservationRepo struct {
	reservations []models.Reservation
	err          error
	lastStart    time.Time
	lastEnd      time.Time
}

func (f *fakeReservationRepo) ListByRoomAndRange(ctx context.Context, roomID string, start, end time.Time, excludeID string) ([]models.Reservation, error) {
	return nil, nil
}

func (f *fakeReservationRepo) ListByRange(ctx context.Context, locationID string, start, end time.Time) ([]models.Reservation, error) {
	f.lastStart, f.lastEnd = start, end
	return f.reservations, f.err
}

func (f *fakeReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	return nil, errors.New("reservation not found")
}

func (f *fakeReservationRepo) Create(ctx context.Context, res *models.Reservation, force bool) error {
	return nil
}

func (f *fakeReservationRepo) UpdateDates(ctx context.Context, id string, checkIn, checkOut time.Time) error {
	return nil
}

func (f *fakeReservationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return nil
}

func (f *fakeReservationRepo) CancelIfTentative(ctx context.Context, id string) (bool, error) {
	return false, nil
}

func TestMonthView_AssemblesLayout(t *testing.T) {
	repo := &fakeReservationRepo{reservations: []models.Reservation{
		{ID: "r1", RoomID: "room-1", CheckInDate: date(2025, 6, 10), CheckOutDate: date(2025, 6, 12), Status: models.StatusConfirmed},
	}}
	svc := &DefaultCalendarService{Reservations: repo, MaxLanes: 2}

	layout, err := svc.MonthView(context.Background(), "", 2025, time.June)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if layout.Year != 2025 || layout.Month != 6 {
		t.Errorf("expected 2025-06 layout, got %d-%d", layout.Year, layout.Month)
	}
	if len(layout.Cells) != 42 {
		t.Fatalf("expected 42 cells, got %d", len(layout.Cells))
	}
	if len(layout.Segments) != 1 {
		t.Fatalf("expected one segment, got %d", len(layout.Segments))
	}

	// June 2025 starts on a Sunday, so the grid runs June 1 through July 12.
	if !repo.lastStart.Equal(date(2025, 6, 1)) {
		t.Errorf("expected query from June 1, got %s", repo.lastStart)
	}
	if !repo.lastEnd.Equal(date(2025, 7, 13)) {
		t.Errorf("expected query through July 13 exclusive, got %s", repo.lastEnd)
	}

	for i, cell := range layout.Cells {
		inJune := cell.Date.Month() == time.June
		if cell.InMonth != inJune {
			t.Fatalf("cell %d (%s): InMonth=%v", i, cell.Date, cell.InMonth)
		}
	}
}

func TestMonthView_RepositoryErrorPropagates(t *testing.T) {
	repo := &fakeReservationRepo{err: errors.New("connection reset")}
	svc := &DefaultCalendarService{Reservations: repo, MaxLanes: 2}

	if _, err := svc.MonthView(context.Background(), "", 2025, time.June); err == nil {
		t.Fatal("expected error when the repository fails")
	}
}

func TestDayDetails_SortedByCheckIn(t *testing.T) {
	repo := &fakeReservationRepo{reservations: []models.Reservation{
		{ID: "late", RoomID: "room-2", CheckInDate: date(2025, 6, 14), CheckOutDate: date(2025, 6, 16), Status: models.StatusConfirmed},
		{ID: "early", RoomID: "room-1", CheckInDate: date(2025, 6, 12), CheckOutDate: date(2025, 6, 15), Status: models.StatusConfirmed},
		{ID: "elsewhere", RoomID: "room-3", CheckInDate: date(2025, 6, 20), CheckOutDate: date(2025, 6, 22), Status: models.StatusConfirmed},
	}}
	svc := &DefaultCalendarService{Reservations: repo, MaxLanes: 2}

	details, err := svc.DayDetails(context.Background(), "", date(2025, 6, 14))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("expected 2 reservations touching June 14, got %d", len(details))
	}
	if details[0].ID != "early" || details[1].ID != "late" {
		t.Errorf("expected check-in order early, late; got %s, %s", details[0].ID, details[1].ID)
	}
}
