package repository

import (
	"context"
	"time"

	reserrors "cabanas/internal/reservations/errors"
	"cabanas/pkg/logger"
	"cabanas/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// LockRepository serializes booking attempts per cabin through a lock
// document keyed by cabin. A TTL index on expires_at reaps locks abandoned
// by crashed processes.
type LockRepository interface {
	Acquire(ctx context.Context, lockID string, ttl time.Duration) error
	Release(ctx context.Context, lockID string) error
}

type mongoLockRepository struct {
	collection *mongo.Collection
	log        *logger.Logger
}

func NewMongoLockRepository(db *mongo.Database, log *logger.Logger) LockRepository {
	return &mongoLockRepository{
		collection: db.Collection("reservation_locks"),
		log:        log,
	}
}

func (r *mongoLockRepository) Acquire(ctx context.Context, lockID string, ttl time.Duration) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	lock := model.ReservationLock{
		ID:        lockID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}

	_, err := r.collection.InsertOne(ctx, lock)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return reserrors.ErrLockHeld
		}
		r.log.Error("Failed to acquire lock", "lock_id", lockID, "error", err)
		return err
	}

	return nil
}

func (r *mongoLockRepository) Release(ctx context.Context, lockID string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": lockID})
	if err != nil {
		r.log.Error("Failed to release lock", "lock_id", lockID, "error", err)
		return err
	}

	return nil
}
