package repository

import (
	"context"
	"time"

	mongodb "cabanas/pkg/db/mongo"
	"cabanas/pkg/logger"
	"cabanas/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const queryTimeout = 5 * time.Second

type ReservationRepository interface {
	Create(ctx context.Context, reservation *model.Reservation) error
	FindAll(ctx context.Context, userID string) ([]model.Reservation, error)
	FindConfirmedByCabin(ctx context.Context, cabinID string) ([]model.Reservation, error)
	ExecuteTransaction(ctx context.Context, fn mongodb.TransactionFunc) error
}

type mongoReservationRepository struct {
	collection *mongo.Collection
	txManager  mongodb.TransactionManager
	log        *logger.Logger
}

func NewMongoReservationRepository(db *mongo.Database, txManager mongodb.TransactionManager, log *logger.Logger) ReservationRepository {
	return &mongoReservationRepository{
		collection: db.Collection("reservations"),
		txManager:  txManager,
		log:        log,
	}
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}

func (r *mongoReservationRepository) Create(ctx context.Context, reservation *model.Reservation) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, reservation)
	if err != nil {
		r.log.Error("Failed to insert reservation",
			"reservation_id", reservation.ID,
			"cabin_id", reservation.CabinID,
			"error", err,
		)
		return err
	}

	return nil
}

// FindAll returns reservations in creation order, oldest first. An empty
// userID returns every reservation.
func (r *mongoReservationRepository) FindAll(ctx context.Context, userID string) ([]model.Reservation, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		r.log.Error("Failed to query reservations", "user_id", userID, "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	reservations := []model.Reservation{}
	if err := cursor.All(ctx, &reservations); err != nil {
		r.log.Error("Failed to decode reservations", "error", err)
		return nil, err
	}

	return reservations, nil
}

func (r *mongoReservationRepository) FindConfirmedByCabin(ctx context.Context, cabinID string) ([]model.Reservation, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	filter := bson.M{
		"cabin_id": cabinID,
		"status":   model.StatusConfirmed,
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		r.log.Error("Failed to query confirmed reservations", "cabin_id", cabinID, "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	reservations := []model.Reservation{}
	if err := cursor.All(ctx, &reservations); err != nil {
		r.log.Error("Failed to decode reservations", "cabin_id", cabinID, "error", err)
		return nil, err
	}

	return reservations, nil
}

func (r *mongoReservationRepository) ExecuteTransaction(ctx context.Context, fn mongodb.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}
