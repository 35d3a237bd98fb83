package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "cabanas"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 20
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// How long a booking request may hold the per-cabin advisory lock before
	// the TTL reaper frees it.
	DefaultLockTTL = 10 * time.Second

	DefaultNotifyMode          = NotifyModeEmail
	DefaultReservationTopic    = "reservations.confirmed"
	DefaultReservationDLQTopic = "reservations.confirmed.dlq"
	DefaultNotifierGroupID     = "reservation-notifier"

	DefaultEmailFrom = "noreply@cabanasushuaia.com"

	DefaultSeedFile = "data/cabins.json"
)
