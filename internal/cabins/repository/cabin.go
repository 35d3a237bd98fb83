package repository

import (
	"context"
	"errors"
	"time"

	cabinerrors "cabanas/internal/cabins/errors"
	"cabanas/pkg/logger"
	"cabanas/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const queryTimeout = 5 * time.Second

type CabinRepository interface {
	FindAll(ctx context.Context) ([]model.Cabin, error)
	FindByID(ctx context.Context, id string) (*model.Cabin, error)
	Upsert(ctx context.Context, cabin *model.Cabin) error
}

type mongoCabinRepository struct {
	collection *mongo.Collection
	log        *logger.Logger
}

func NewMongoCabinRepository(db *mongo.Database, log *logger.Logger) CabinRepository {
	return &mongoCabinRepository{
		collection: db.Collection("cabins"),
		log:        log,
	}
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}

func (r *mongoCabinRepository) FindAll(ctx context.Context) ([]model.Cabin, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Error("Failed to query cabins", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	cabins := []model.Cabin{}
	if err := cursor.All(ctx, &cabins); err != nil {
		r.log.Error("Failed to decode cabins", "error", err)
		return nil, err
	}

	return cabins, nil
}

func (r *mongoCabinRepository) FindByID(ctx context.Context, id string) (*model.Cabin, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var cabin model.Cabin
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&cabin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cabinerrors.ErrNotFound
		}
		r.log.Error("Failed to query cabin", "cabin_id", id, "error", err)
		return nil, err
	}

	return &cabin, nil
}

func (r *mongoCabinRepository) Upsert(ctx context.Context, cabin *model.Cabin) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": cabin.ID}, cabin, opts)
	if err != nil {
		r.log.Error("Failed to upsert cabin", "cabin_id", cabin.ID, "error", err)
		return err
	}

	return nil
}
