package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvLockTTL = "RESERVATION_LOCK_TTL"

	EnvNotifyMode          = "NOTIFY_MODE"
	EnvReservationTopic    = "RESERVATION_TOPIC"
	EnvReservationDLQTopic = "RESERVATION_DLQ_TOPIC"
	EnvNotifierGroupID     = "NOTIFIER_GROUP_ID"

	EnvEmailAPIURL = "EMAIL_API_URL"
	EnvEmailAPIKey = "EMAIL_API_KEY"
	EnvEmailFrom   = "EMAIL_FROM"

	EnvSeedFile = "SEED_FILE"
)
