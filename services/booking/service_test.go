package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RavinduBA/Checking-Checkout-Web-sub001/models"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/services/scheduling"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fakeReservationRepo struct {
	reservations []models.Reservation
	nextID       int
}

func (f *fakeReservationRepo) ListByRoomAndRange(ctx context.Context, roomID string, start, end time.Time, excludeID string) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range f.reservations {
		if r.RoomID != roomID || r.IsCancelled() || r.ID == excludeID {
			continue
		}
		if scheduling.Overlaps(r.CheckInDate, r.CheckOutDate, start, end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) ListByRange(ctx context.Context, locationID string, start, end time.Time) ([]models.Reservation, error) {
	return f.reservations, nil
}

func (f *fakeReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	for i := range f.reservations {
		if f.reservations[i].ID == id {
			res := f.reservations[i]
			return &res, nil
		}
	}
	return nil, errors.New("reservation not found")
}

func (f *fakeReservationRepo) Create(ctx context.Context, res *models.Reservation, force bool) error {
	if res.ID == "" {
		f.nextID++
		res.ID = string(rune('a' + f.nextID))
	}
	f.reservations = append(f.reservations, *res)
	return nil
}

func (f *fakeReservationRepo) UpdateDates(ctx context.Context, id string, checkIn, checkOut time.Time) error {
	for i := range f.reservations {
		if f.reservations[i].ID == id {
			f.reservations[i].CheckInDate = checkIn
			f.reservations[i].CheckOutDate = checkOut
			return nil
		}
	}
	return errors.New("reservation not found")
}

func (f *fakeReservationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	for i := range f.reservations {
		if f.reservations[i].ID == id {
			f.reservations[i].Status = status
			return nil
		}
	}
	return errors.New("reservation not found")
}

func (f *fakeReservationRepo) CancelIfTentative(ctx context.Context, id string) (bool, error) {
	for i := range f.reservations {
		if f.reservations[i].ID == id && f.reservations[i].Status == models.StatusTentative {
			f.reservations[i].Status = models.StatusCancelled
			return true, nil
		}
	}
	return false, nil
}

type fakeRoomRepo struct {
	rooms []models.Room
}

func (f *fakeRoomRepo) ListActive(ctx context.Context, locationID string) ([]models.Room, error) {
	return f.rooms, nil
}

func (f *fakeRoomRepo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	for i := range f.rooms {
		if f.rooms[i].ID == id {
			return &f.rooms[i], nil
		}
	}
	return nil, errors.New("room not found")
}

func (f *fakeRoomRepo) Create(ctx context.Context, room *models.Room) error        { return nil }
func (f *fakeRoomRepo) SetActive(ctx context.Context, id string, active bool) error { return nil }

type fakeCalendar struct {
	invalidations int
}

func (f *fakeCalendar) MonthView(ctx context.Context, locationID string, year int, month time.Month) (*models.CalendarLayout, error) {
	return nil, nil
}

func (f *fakeCalendar) DayDetails(ctx context.Context, locationID string, day time.Time) ([]models.Reservation, error) {
	return nil, nil
}

func (f *fakeCalendar) InvalidateRange(ctx context.Context, locationID string, checkIn, checkOut time.Time) {
	f.invalidations++
}

type fakeHolds struct {
	scheduled []string
}

func (f *fakeHolds) ScheduleExpiry(reservationID string, fireAt time.Time) error {
	f.scheduled = append(f.scheduled, reservationID)
	return nil
}

func newService(resRepo *fakeReservationRepo, roomRepo *fakeRoomRepo) (*DefaultBookingService, *fakeCalendar, *fakeHolds) {
	cal := &fakeCalendar{}
	holds := &fakeHolds{}
	return &DefaultBookingService{
		Reservations: resRepo,
		Rooms:        roomRepo,
		Checker:      &scheduling.DefaultAvailabilityChecker{Repo: resRepo},
		Calendar:     cal,
		Holds:        holds,
		HoldTTL:      2 * time.Hour,
	}, cal, holds
}

func activeRoom() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: []models.Room{
		{ID: "room-1", LocationID: "loc-a", RoomNumber: "101", BasePrice: 100, Active: true},
	}}
}

func TestCreateReservation_Succeeds(t *testing.T) {
	resRepo := &fakeReservationRepo{}
	svc, cal, _ := newService(resRepo, activeRoom())

	res, err := svc.CreateReservation(context.Background(), CreateReservationInput{
		RoomID:       "room-1",
		CheckInDate:  date(2025, 9, 1),
		CheckOutDate: date(2025, 9, 4),
		GuestName:    "Ada Lovelace",
		Adults:       2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != models.StatusPending {
		t.Errorf("expected default status pending, got %s", res.Status)
	}
	if res.TotalAmount != 300 {
		t.Errorf("expected total 300 for 3 nights at 100, got %v", res.TotalAmount)
	}
	if res.LocationID != "loc-a" {
		t.Errorf("expected location from room, got %s", res.LocationID)
	}
	if cal.invalidations != 1 {
		t.Errorf("expected one calendar invalidation, got %d", cal.invalidations)
	}
}

func TestCreateReservation_ConflictIsRefused(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: []models.Reservation{
		{ID: "r1", RoomID: "room-1", CheckInDate: date(2025, 9, 2), CheckOutDate: date(2025, 9, 6), Status: models.StatusConfirmed},
	}}
	svc, _, _ := newService(resRepo, activeRoom())

	_, err := svc.CreateReservation(context.Background(), CreateReservationInput{
		RoomID:       "room-1",
		CheckInDate:  date(2025, 9, 1),
		CheckOutDate: date(2025, 9, 4),
		GuestName:    "Ada Lovelace",
	})
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if len(conflict.Conflicts) != 1 || conflict.Conflicts[0].ID != "r1" {
		t.Fatalf("expected conflict with r1, got %+v", conflict.Conflicts)
	}
}

func TestCreateReservation_ForceOverridesConflict(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: []models.Reservation{
		{ID: "r1", RoomID: "room-1", CheckInDate: date(2025, 9, 2), CheckOutDate: date(2025, 9, 6), Status: models.StatusConfirmed},
	}}
	svc, _, _ := newService(resRepo, activeRoom())

	res, err := svc.CreateReservation(context.Background(), CreateReservationInput{
		RoomID:       "room-1",
		CheckInDate:  date(2025, 9, 1),
		CheckOutDate: date(2025, 9, 4),
		GuestName:    "Ada Lovelace",
		Force:        true,
	})
	if err != nil {
		t.Fatalf("force booking must succeed, got %v", err)
	}
	if res.ID == "" {
		t.Fatal("expected reservation to be created")
	}
}

func TestCreateReservation_TentativeSchedulesExpiry(t *testing.T) {
	resRepo := &fakeReservationRepo{}
	svc, _, holds := newService(resRepo, activeRoom())

	res, err := svc.CreateReservation(context.Background(), CreateReservationInput{
		RoomID:       "room-1",
		CheckInDate:  date(2025, 9, 1),
		CheckOutDate: date(2025, 9, 2),
		GuestName:    "Ada Lovelace",
		Status:       models.StatusTentative,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(holds.scheduled) != 1 || holds.scheduled[0] != res.ID {
		t.Fatalf("expected one scheduled expiry for %s, got %v", res.ID, holds.scheduled)
	}
}

func TestUpdateReservationDates_SelfExclusion(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: []models.Reservation{
		{ID: "r1", RoomID: "room-1", LocationID: "loc-a", CheckInDate: date(2025, 9, 1), CheckOutDate: date(2025, 9, 4), Status: models.StatusConfirmed},
	}}
	svc, _, _ := newService(resRepo, activeRoom())

	// Extending a stay over its own existing nights must not self-conflict.
	res, err := svc.UpdateReservationDates(context.Background(), "r1", date(2025, 9, 1), date(2025, 9, 6), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.CheckOutDate.Equal(date(2025, 9, 6)) {
		t.Fatalf("expected checkout moved to Sep 6, got %s", res.CheckOutDate)
	}
}

func TestTransition_EnforcesStateMachine(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: []models.Reservation{
		{ID: "r1", RoomID: "room-1", CheckInDate: date(2025, 9, 1), CheckOutDate: date(2025, 9, 4), Status: models.StatusPending},
	}}
	svc, _, _ := newService(resRepo, activeRoom())

	if _, err := svc.Transition(context.Background(), "r1", models.StatusCheckedOut); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("pending -> checked_out must be rejected, got %v", err)
	}

	res, err := svc.Transition(context.Background(), "r1", models.StatusConfirmed)
	if err != nil {
		t.Fatalf("pending -> confirmed must succeed, got %v", err)
	}
	if res.Status != models.StatusConfirmed {
		t.Fatalf("expected confirmed, got %s", res.Status)
	}
}

func TestTransition_CancelInvalidatesCalendar(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: []models.Reservation{
		{ID: "r1", RoomID: "room-1", LocationID: "loc-a", CheckInDate: date(2025, 9, 1), CheckOutDate: date(2025, 9, 4), Status: models.StatusPending},
	}}
	svc, cal, _ := newService(resRepo, activeRoom())

	if _, err := svc.Transition(context.Background(), "r1", models.StatusCancelled); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cal.invalidations != 1 {
		t.Fatalf("cancel must invalidate the month view, got %d invalidations", cal.invalidations)
	}
}
