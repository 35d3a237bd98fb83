package model

import "time"

// ReservationLock is an advisory per-cabin lock held while a booking request
// runs its availability check and insert. A TTL index on expires_at reaps
// locks abandoned by crashed requests.
type ReservationLock struct {
	ID        string    `json:"id" bson:"_id"`
	ExpiresAt time.Time `json:"expires_at" bson:"expires_at"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
