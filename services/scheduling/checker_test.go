package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RavinduBA/Checking-Checkout-Web-sub001/models"
)

// fakeReservationRepo is an in-memory ReservationRepository for tests.
type fakeReservationRepo struct {
	reservations []models.Reservation
	err          error
}

func (f *fakeReservationRepo) ListByRoomAndRange(ctx context.Context, roomID string, start, end time.Time, excludeID string) ([]models.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []models.Reservation
	for _, r := range f.reservations {
		if r.RoomID != roomID || r.IsCancelled() || r.ID == excludeID {
			continue
		}
		if Overlaps(r.CheckInDate, r.CheckOutDate, start, end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) ListByRange(ctx context.Context, locationID string, start, end time.Time) ([]models.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Reservation
	for _, r := range f.reservations {
		if r.IsCancelled() {
			continue
		}
		if locationID != "" && r.LocationID != locationID {
			continue
		}
		if Overlaps(r.CheckInDate, r.CheckOutDate, start, end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	for i := range f.reservations {
		if f.reservations[i].ID == id {
			return &f.reservations[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeReservationRepo) Create(ctx context.Context, res *models.Reservation, force bool) error {
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
	return errors.New("not found")
}

func (f *fakeReservationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	for i := range f.reservations {
		if f.reservations[i].ID == id {
			f.reservations[i].Status = status
			return nil
		}
	}
	return errors.New("not found")
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

func reservation(id, roomID string, in, out time.Time, status string) models.Reservation {
	return models.Reservation{
		ID:           id,
		RoomID:       roomID,
		CheckInDate:  in,
		CheckOutDate: out,
		Status:       status,
	}
}

func TestCheck_AdjacentStaysDoNotConflict(t *testing.T) {
	repo := &fakeReservationRepo{reservations: []models.Reservation{
		reservation("r1", "room-1", date(2025, 1, 1), date(2025, 1, 5), models.StatusConfirmed),
	}}
	checker := &DefaultAvailabilityChecker{Repo: repo}

	result, err := checker.Check(context.Background(), "room-1", date(2025, 1, 5), date(2025, 1, 8), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsAvailable {
		t.Fatalf("expected available, got conflicts %v", result.Conflicts)
	}
}

func TestCheck_SelfExclusion(t *testing.T) {
	repo := &fakeReservationRepo{reservations: []models.Reservation{
		reservation("r1", "room-1", date(2025, 1, 1), date(2025, 1, 5), models.StatusConfirmed),
	}}
	checker := &DefaultAvailabilityChecker{Repo: repo}

	// Checking a reservation's own range with its own id excluded must pass.
	result, err := checker.Check(context.Background(), "room-1", date(2025, 1, 1), date(2025, 1, 5), "r1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsAvailable {
		t.Fatal("expected available when excluding the edited reservation")
	}

	result, err = checker.Check(context.Background(), "room-1", date(2025, 1, 1), date(2025, 1, 5), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsAvailable {
		t.Fatal("expected conflict without exclusion")
	}
}

func TestCheck_CancelledReservationsNeverConflict(t *testing.T) {
	repo := &fakeReservationRepo{reservations: []models.Reservation{
		reservation("r1", "room-1", date(2025, 1, 1), date(2025, 1, 10), models.StatusCancelled),
	}}
	checker := &DefaultAvailabilityChecker{Repo: repo}

	result, err := checker.Check(context.Background(), "room-1", date(2025, 1, 2), date(2025, 1, 4), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsAvailable || len(result.Conflicts) != 0 {
		t.Fatalf("cancelled reservation must not conflict, got %v", result.Conflicts)
	}
}

func TestCheck_BackToBackStays(t *testing.T) {
	repo := &fakeReservationRepo{reservations: []models.Reservation{
		reservation("r1", "room-1", date(2025, 6, 1), date(2025, 6, 5), models.StatusConfirmed),
		reservation("r2", "room-1", date(2025, 6, 5), date(2025, 6, 10), models.StatusConfirmed),
	}}
	checker := &DefaultAvailabilityChecker{Repo: repo}

	result, err := checker.Check(context.Background(), "room-1", date(2025, 6, 3), date(2025, 6, 7), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsAvailable {
		t.Fatal("expected unavailable")
	}
	if len(result.Conflicts) != 2 {
		t.Fatalf("expected exactly 2 conflicts, got %d", len(result.Conflicts))
	}

	result, err = checker.Check(context.Background(), "room-1", date(2025, 6, 10), date(2025, 6, 12), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsAvailable {
		t.Fatalf("expected available after the second checkout, got %v", result.Conflicts)
	}
}

func TestCheck_InvalidRange(t *testing.T) {
	checker := &DefaultAvailabilityChecker{Repo: &fakeReservationRepo{}}
	_, err := checker.Check(context.Background(), "room-1", date(2025, 6, 5), date(2025, 6, 5), "")
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestCheck_RepositoryErrorPropagates(t *testing.T) {
	repoErr := errors.New("connection refused")
	checker := &DefaultAvailabilityChecker{Repo: &fakeReservationRepo{err: repoErr}}

	_, err := checker.Check(context.Background(), "room-1", date(2025, 6, 1), date(2025, 6, 2), "")
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error to propagate, got %v", err)
	}
}
