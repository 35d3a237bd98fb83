package service

import (
	"context"
	"errors"
	"strings"
	"time"

	cabinerrors "cabanas/internal/cabins/errors"
	cabinrepo "cabanas/internal/cabins/repository"
	"cabanas/internal/notifications"
	reserrors "cabanas/internal/reservations/errors"
	"cabanas/internal/reservations/repository"
	"cabanas/internal/reservations/validator"
	apperrors "cabanas/pkg/errors"
	"cabanas/pkg/logger"
	"cabanas/pkg/model"
	"cabanas/pkg/sanitizer"

	"github.com/google/uuid"
)

const lockPrefix = "cabin_lock_"

// CreateResult reports the persisted reservation together with whether the
// confirmation was delivered. EmailSent false with a non-nil Reservation means
// the booking stands but the guest was not notified.
type CreateResult struct {
	Reservation *model.Reservation `json:"reservation"`
	EmailSent   bool               `json:"email_sent"`
}

type ReservationService interface {
	Create(ctx context.Context, reservation *model.Reservation) (*CreateResult, error)
	List(ctx context.Context, userID string) ([]model.Reservation, error)
}

type reservationService struct {
	repo      repository.ReservationRepository
	locks     repository.LockRepository
	cabins    cabinrepo.CabinRepository
	validator *validator.ReservationValidator
	notifier  notifications.Notifier
	lockTTL   time.Duration
	log       *logger.Logger
	now       func() time.Time
}

func NewReservationService(
	repo repository.ReservationRepository,
	locks repository.LockRepository,
	cabins cabinrepo.CabinRepository,
	v *validator.ReservationValidator,
	notifier notifications.Notifier,
	lockTTL time.Duration,
	log *logger.Logger,
) ReservationService {
	return &reservationService{
		repo:      repo,
		locks:     locks,
		cabins:    cabins,
		validator: v,
		notifier:  notifier,
		lockTTL:   lockTTL,
		log:       log,
		now:       time.Now,
	}
}

// Create runs the booking pipeline: normalize input, validate the request,
// then check availability and insert inside a per-cabin lock so two requests
// for the same cabin cannot both pass the overlap check. The confirmation is
// sent only after the reservation is durably stored.
func (s *reservationService) Create(ctx context.Context, reservation *model.Reservation) (*CreateResult, error) {
	s.sanitize(reservation)

	if err := s.validator.ValidateRequest(reservation, s.now().UTC()); err != nil {
		return nil, err
	}

	cabin, err := s.cabins.FindByID(ctx, reservation.CabinID)
	if err != nil {
		if errors.Is(err, cabinerrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("cabin", reservation.CabinID)
		}
		return nil, apperrors.Internal("failed to fetch cabin", err)
	}

	lockID := lockPrefix + reservation.CabinID
	if err := s.locks.Acquire(ctx, lockID, s.lockTTL); err != nil {
		if errors.Is(err, reserrors.ErrLockHeld) {
			return nil, apperrors.Conflict("Another booking for this cabin is in progress, please retry")
		}
		return nil, apperrors.Internal("failed to acquire booking lock", err)
	}
	defer s.releaseLock(ctx, lockID)

	reservation.ID = "R_" + uuid.NewString()
	reservation.Status = model.StatusConfirmed
	reservation.CreatedAt = s.now().UTC()

	err = s.repo.ExecuteTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindConfirmedByCabin(txCtx, reservation.CabinID)
		if err != nil {
			return apperrors.Internal("failed to load existing reservations", err)
		}

		if err := s.validator.ValidateAvailability(reservation, cabin, existing); err != nil {
			return err
		}

		if err := s.repo.Create(txCtx, reservation); err != nil {
			return apperrors.Internal("failed to store reservation", err)
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.AsAppError(err)
	}

	result := &CreateResult{Reservation: reservation, EmailSent: true}
	if err := s.notifier.Notify(ctx, reservation, cabin); err != nil {
		s.log.Warn("Reservation stored but confirmation delivery failed",
			"reservation_id", reservation.ID,
			"guest_email", reservation.Guest.Email,
			"error", err,
		)
		result.EmailSent = false
	}

	return result, nil
}

func (s *reservationService) List(ctx context.Context, userID string) ([]model.Reservation, error) {
	reservations, err := s.repo.FindAll(ctx, strings.TrimSpace(userID))
	if err != nil {
		return nil, apperrors.Internal("failed to list reservations", err)
	}
	return reservations, nil
}

func (s *reservationService) sanitize(reservation *model.Reservation) {
	reservation.CabinID = sanitizer.TrimAndNormalize(reservation.CabinID)
	reservation.UserID = sanitizer.TrimAndNormalize(reservation.UserID)
	reservation.CheckIn = strings.TrimSpace(reservation.CheckIn)
	reservation.CheckOut = strings.TrimSpace(reservation.CheckOut)
	reservation.Guest.Name = sanitizer.NormalizeName(reservation.Guest.Name)
	reservation.Guest.Email = sanitizer.NormalizeEmail(reservation.Guest.Email)
	reservation.Guest.Phone = sanitizer.NormalizePhone(reservation.Guest.Phone)
}

// releaseLock uses a detached context so the lock is freed even when the
// request context is already cancelled. The TTL index covers the case where
// release itself fails.
func (s *reservationService) releaseLock(ctx context.Context, lockID string) {
	releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := s.locks.Release(releaseCtx, lockID); err != nil {
		s.log.Warn("Failed to release booking lock", "lock_id", lockID, "error", err)
	}
}
