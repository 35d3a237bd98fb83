package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	cabinerrors "cabanas/internal/cabins/errors"
	reserrors "cabanas/internal/reservations/errors"
	"cabanas/internal/reservations/validator"
	mongodb "cabanas/pkg/db/mongo"
	apperrors "cabanas/pkg/errors"
	"cabanas/pkg/logger"
	"cabanas/pkg/model"
)

// --- Mocks ---

type mockReservationRepo struct {
	created        []*model.Reservation
	confirmed      []model.Reservation
	all            []model.Reservation
	createErr      error
	findErr        error
	transactionErr error
}

func (m *mockReservationRepo) Create(ctx context.Context, reservation *model.Reservation) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, reservation)
	return nil
}

func (m *mockReservationRepo) FindAll(ctx context.Context, userID string) ([]model.Reservation, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	if userID == "" {
		return m.all, nil
	}
	filtered := []model.Reservation{}
	for _, r := range m.all {
		if r.UserID == userID {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func (m *mockReservationRepo) FindConfirmedByCabin(ctx context.Context, cabinID string) ([]model.Reservation, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.confirmed, nil
}

func (m *mockReservationRepo) ExecuteTransaction(ctx context.Context, fn mongodb.TransactionFunc) error {
	if m.transactionErr != nil {
		return m.transactionErr
	}
	return fn(ctx)
}

type mockLockRepo struct {
	acquireErr error
	acquired   []string
	released   []string
}

func (m *mockLockRepo) Acquire(ctx context.Context, lockID string, ttl time.Duration) error {
	if m.acquireErr != nil {
		return m.acquireErr
	}
	m.acquired = append(m.acquired, lockID)
	return nil
}

func (m *mockLockRepo) Release(ctx context.Context, lockID string) error {
	m.released = append(m.released, lockID)
	return nil
}

type mockCabinRepo struct {
	cabin   *model.Cabin
	findErr error
}

func (m *mockCabinRepo) FindAll(ctx context.Context) ([]model.Cabin, error) {
	if m.cabin == nil {
		return []model.Cabin{}, nil
	}
	return []model.Cabin{*m.cabin}, nil
}

func (m *mockCabinRepo) FindByID(ctx context.Context, id string) (*model.Cabin, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	if m.cabin == nil || m.cabin.ID != id {
		return nil, cabinerrors.ErrNotFound
	}
	return m.cabin, nil
}

func (m *mockCabinRepo) Upsert(ctx context.Context, cabin *model.Cabin) error {
	return nil
}

type mockNotifier struct {
	err      error
	notified []*model.Reservation
}

func (m *mockNotifier) Notify(ctx context.Context, reservation *model.Reservation, cabin *model.Cabin) error {
	if m.err != nil {
		return m.err
	}
	m.notified = append(m.notified, reservation)
	return nil
}

// --- Fixtures ---

type fixture struct {
	service  ReservationService
	repo     *mockReservationRepo
	locks    *mockLockRepo
	cabins   *mockCabinRepo
	notifier *mockNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		repo:  &mockReservationRepo{},
		locks: &mockLockRepo{},
		cabins: &mockCabinRepo{
			cabin: &model.Cabin{
				ID:            "cabana-del-lago",
				Name:          "Cabaña del Lago",
				Capacity:      4,
				PricePerNight: 210,
			},
		},
		notifier: &mockNotifier{},
	}

	log := logger.New(logger.Config{Level: "error", Format: logger.TEXT, Service: "test"})
	svc := NewReservationService(f.repo, f.locks, f.cabins, validator.NewReservationValidator(), f.notifier, 10*time.Second, log)
	svc.(*reservationService).now = func() time.Time {
		return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	}
	f.service = svc
	return f
}

func validRequest() *model.Reservation {
	return &model.Reservation{
		CabinID: "cabana-del-lago",
		UserID:  "user-42",
		Guest: model.Guest{
			Name:  "  Juan  Pérez ",
			Email: "Juan.Perez@Example.COM ",
			Phone: "+54 9 2901 555 123",
		},
		CheckIn:   "2026-09-10",
		CheckOut:  "2026-09-15",
		PartySize: 3,
	}
}

func assertAppErrorCode(t *testing.T, err error, wantCode string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %s, got nil", wantCode)
	}
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}
	if appErr.Code != wantCode {
		t.Fatalf("expected code %s, got %s (%s)", wantCode, appErr.Code, appErr.Message)
	}
}

// --- Tests ---

func TestCreateStoresConfirmedReservation(t *testing.T) {
	f := newFixture(t)

	result, err := f.service.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}

	if len(f.repo.created) != 1 {
		t.Fatalf("expected 1 stored reservation, got %d", len(f.repo.created))
	}
	stored := f.repo.created[0]

	if !strings.HasPrefix(stored.ID, "R_") {
		t.Errorf("expected generated ID with R_ prefix, got %q", stored.ID)
	}
	if stored.Status != model.StatusConfirmed {
		t.Errorf("expected status confirmed, got %q", stored.Status)
	}
	if stored.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
	if !result.EmailSent {
		t.Error("expected email_sent true when the notifier succeeds")
	}
	if len(f.notifier.notified) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(f.notifier.notified))
	}
}

func TestCreateSanitizesGuestInput(t *testing.T) {
	f := newFixture(t)

	result, err := f.service.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}

	guest := result.Reservation.Guest
	if guest.Name != "Juan Pérez" {
		t.Errorf("expected normalized name, got %q", guest.Name)
	}
	if guest.Email != "juan.perez@example.com" {
		t.Errorf("expected lowercased trimmed email, got %q", guest.Email)
	}
	if guest.Phone != "+5492901555123" {
		t.Errorf("expected phone without spaces, got %q", guest.Phone)
	}
}

func TestCreateRejectsOverlap(t *testing.T) {
	f := newFixture(t)
	f.repo.confirmed = []model.Reservation{
		{
			ID:       "R_existing",
			CabinID:  "cabana-del-lago",
			CheckIn:  "2026-09-12",
			CheckOut: "2026-09-20",
			Status:   model.StatusConfirmed,
		},
	}

	_, err := f.service.Create(context.Background(), validRequest())
	assertAppErrorCode(t, err, apperrors.CodeConflict)

	if len(f.repo.created) != 0 {
		t.Errorf("expected no reservation stored on conflict, got %d", len(f.repo.created))
	}
	if len(f.notifier.notified) != 0 {
		t.Errorf("expected no notification on conflict, got %d", len(f.notifier.notified))
	}
	if len(f.locks.released) != 1 {
		t.Errorf("expected lock released after conflict, got %d releases", len(f.locks.released))
	}
}

func TestCreateCabinNotFound(t *testing.T) {
	f := newFixture(t)
	f.cabins.cabin = nil

	_, err := f.service.Create(context.Background(), validRequest())
	assertAppErrorCode(t, err, apperrors.CodeNotFound)

	if len(f.locks.acquired) != 0 {
		t.Errorf("expected no lock acquired for unknown cabin, got %v", f.locks.acquired)
	}
}

func TestCreateValidationFailsBeforeLock(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.CheckIn = "2026-09-15"
	req.CheckOut = "2026-09-10"

	_, err := f.service.Create(context.Background(), req)
	assertAppErrorCode(t, err, apperrors.CodeInvalidDateRange)

	if len(f.locks.acquired) != 0 {
		t.Errorf("expected no lock acquired on invalid request, got %v", f.locks.acquired)
	}
}

func TestCreateLockContention(t *testing.T) {
	f := newFixture(t)
	f.locks.acquireErr = reserrors.ErrLockHeld

	_, err := f.service.Create(context.Background(), validRequest())
	assertAppErrorCode(t, err, apperrors.CodeConflict)

	if len(f.repo.created) != 0 {
		t.Errorf("expected no reservation stored under contention, got %d", len(f.repo.created))
	}
}

func TestCreateUsesPerCabinLockID(t *testing.T) {
	f := newFixture(t)

	if _, err := f.service.Create(context.Background(), validRequest()); err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}

	if len(f.locks.acquired) != 1 || f.locks.acquired[0] != "cabin_lock_cabana-del-lago" {
		t.Errorf("expected lock cabin_lock_cabana-del-lago, got %v", f.locks.acquired)
	}
	if len(f.locks.released) != 1 || f.locks.released[0] != "cabin_lock_cabana-del-lago" {
		t.Errorf("expected same lock released, got %v", f.locks.released)
	}
}

func TestCreatePersistenceFailure(t *testing.T) {
	f := newFixture(t)
	f.repo.createErr = errors.New("write concern error")

	_, err := f.service.Create(context.Background(), validRequest())
	assertAppErrorCode(t, err, apperrors.CodeInternal)

	if len(f.notifier.notified) != 0 {
		t.Errorf("expected no notification when persistence fails, got %d", len(f.notifier.notified))
	}
	if len(f.locks.released) != 1 {
		t.Errorf("expected lock released after persistence failure, got %d releases", len(f.locks.released))
	}
}

func TestCreateNotifierFailureDoesNotUnwindBooking(t *testing.T) {
	f := newFixture(t)
	f.notifier.err = errors.New("email provider down")

	result, err := f.service.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("expected create to succeed despite notifier failure, got %v", err)
	}

	if result.EmailSent {
		t.Error("expected email_sent false when the notifier fails")
	}
	if len(f.repo.created) != 1 {
		t.Errorf("expected reservation stored despite notifier failure, got %d", len(f.repo.created))
	}
}

func TestCreateIgnoresClientSuppliedIDAndStatus(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.ID = "R_forged"
	req.Status = model.StatusCancelled

	result, err := f.service.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}

	if result.Reservation.ID == "R_forged" {
		t.Error("expected server-generated ID, client value was kept")
	}
	if result.Reservation.Status != model.StatusConfirmed {
		t.Errorf("expected status confirmed, got %q", result.Reservation.Status)
	}
}

func TestListFiltersByUser(t *testing.T) {
	f := newFixture(t)
	f.repo.all = []model.Reservation{
		{ID: "R_1", UserID: "user-1"},
		{ID: "R_2", UserID: "user-2"},
		{ID: "R_3", UserID: "user-1"},
	}

	all, err := f.service.List(context.Background(), "")
	if err != nil {
		t.Fatalf("expected list to succeed, got %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 reservations without filter, got %d", len(all))
	}

	mine, err := f.service.List(context.Background(), " user-1 ")
	if err != nil {
		t.Fatalf("expected filtered list to succeed, got %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("expected 2 reservations for user-1, got %d", len(mine))
	}
}

func TestListRepositoryFailure(t *testing.T) {
	f := newFixture(t)
	f.repo.findErr = errors.New("cursor error")

	_, err := f.service.List(context.Background(), "")
	assertAppErrorCode(t, err, apperrors.CodeInternal)
}
