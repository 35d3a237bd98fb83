package model

import "time"

// DateLayout is the wire and storage format for check-in/check-out dates.
// Reservations carry date-only semantics; times of day never participate.
const DateLayout = "2006-01-02"

const (
	StatusConfirmed = "confirmed"
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
)

type Guest struct {
	Name  string `json:"name" bson:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" bson:"email" validate:"required,email"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,max=30"`
}

// Reservation is append-only: created once by the booking flow, never mutated.
// Status values pending and cancelled are valid stored states but no flow in
// this service produces them.
type Reservation struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	CabinID   string    `json:"cabin_id" bson:"cabin_id" validate:"required"`
	UserID    string    `json:"user_id" bson:"user_id" validate:"required"`
	Guest     Guest     `json:"guest" bson:"guest"`
	CheckIn   string    `json:"check_in" bson:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut  string    `json:"check_out" bson:"check_out" validate:"required,datetime=2006-01-02"`
	PartySize int       `json:"party_size" bson:"party_size" validate:"required,min=1"`
	Status    string    `json:"status" bson:"status" validate:"omitempty,oneof=confirmed pending cancelled"`
	CreatedAt time.Time `json:"created_at,omitempty" bson:"created_at"`
}

func (r *Reservation) CheckInDate() (time.Time, error) {
	return time.Parse(DateLayout, r.CheckIn)
}

func (r *Reservation) CheckOutDate() (time.Time, error) {
	return time.Parse(DateLayout, r.CheckOut)
}
