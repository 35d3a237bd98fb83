package validator

import (
	"errors"
	"fmt"
	"time"

	apperrors "cabanas/pkg/errors"
	"cabanas/pkg/model"

	"github.com/go-playground/validator/v10"
)

// ReservationValidator runs the booking guards in a fixed order. The first
// failing guard decides the rejection; later guards never run.
type ReservationValidator struct {
	validate *validator.Validate
}

func NewReservationValidator() *ReservationValidator {
	return &ReservationValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ValidateRequest checks the request in isolation: required fields, date
// format, date order, and that check-in is not in the past. now anchors the
// past-date check and is truncated to a UTC calendar date, so a check-in of
// today is always accepted regardless of the time of day.
func (v *ReservationValidator) ValidateRequest(res *model.Reservation, now time.Time) error {
	if err := v.validate.Struct(res); err != nil {
		return translateFieldErrors(err)
	}

	checkIn, err := res.CheckInDate()
	if err != nil {
		return apperrors.MissingFields(map[string]any{"check_in": "must be a valid date in YYYY-MM-DD format"})
	}
	checkOut, err := res.CheckOutDate()
	if err != nil {
		return apperrors.MissingFields(map[string]any{"check_out": "must be a valid date in YYYY-MM-DD format"})
	}

	if !checkOut.After(checkIn) {
		return apperrors.InvalidDateRange("Check-out date must be after check-in date")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if checkIn.Before(today) {
		return apperrors.PastDate("Check-in date cannot be in the past")
	}

	return nil
}

// ValidateAvailability checks the request against the cabin and its confirmed
// reservations: the cabin must exist, the party must fit, and the requested
// dates must not overlap any confirmed stay. Pending and cancelled
// reservations never block dates.
func (v *ReservationValidator) ValidateAvailability(res *model.Reservation, cabin *model.Cabin, existing []model.Reservation) error {
	if cabin == nil {
		return apperrors.NotFoundWithID("cabin", res.CabinID)
	}

	if res.PartySize > cabin.Capacity {
		return apperrors.CapacityExceeded(cabin.Name, cabin.Capacity)
	}

	checkIn, err := res.CheckInDate()
	if err != nil {
		return apperrors.InvalidInput("check_in is not a valid date")
	}
	checkOut, err := res.CheckOutDate()
	if err != nil {
		return apperrors.InvalidInput("check_out is not a valid date")
	}

	for _, other := range existing {
		if other.Status != model.StatusConfirmed {
			continue
		}
		otherIn, err := other.CheckInDate()
		if err != nil {
			continue
		}
		otherOut, err := other.CheckOutDate()
		if err != nil {
			continue
		}
		if Overlaps(checkIn, checkOut, otherIn, otherOut) {
			return apperrors.Conflict(
				fmt.Sprintf("Cabin %s is already booked from %s to %s", cabin.Name, other.CheckIn, other.CheckOut),
			).WithDetails(map[string]any{
				"conflicting_check_in":  other.CheckIn,
				"conflicting_check_out": other.CheckOut,
			})
		}
	}

	return nil
}

func translateFieldErrors(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return apperrors.InvalidInput("invalid reservation request")
	}

	details := make(map[string]any, len(fieldErrors))
	for _, fe := range fieldErrors {
		details[fieldName(fe)] = fieldMessage(fe)
	}
	return apperrors.MissingFields(details)
}

func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "CabinID":
		return "cabin_id"
	case "UserID":
		return "user_id"
	case "Name":
		return "guest.name"
	case "Email":
		return "guest.email"
	case "Phone":
		return "guest.phone"
	case "CheckIn":
		return "check_in"
	case "CheckOut":
		return "check_out"
	case "PartySize":
		return "party_size"
	case "Status":
		return "status"
	default:
		return fe.Field()
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "datetime":
		return "must be a valid date in YYYY-MM-DD format"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation: %s", fe.Tag())
	}
}
