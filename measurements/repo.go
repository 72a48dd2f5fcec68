package measurements

import (
	"context"
	"fmt"

	"github.com/plemya-health/healthfeed/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const (
	measurementsCollectionName = "measurements"
)

type Repository interface {
	List(ctx context.Context, filter *Filter, pagination store.Pagination) ([]*Measurement, error)
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(measurementsCollectionName),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type repository struct {
	collection *mongo.Collection
}

func (r *repository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "type", Value: 1},
				{Key: "measuredAt", Value: -1},
			},
			Options: options.Index().
				SetName("UserMeasurementsByType"),
		},
	})
	return err
}

func (r *repository) List(ctx context.Context, filter *Filter, pagination store.Pagination) ([]*Measurement, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "measuredAt", Value: -1}}).
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Offset))

	selector := bson.M{}
	if filter.UserId != nil {
		selector["userId"] = filter.UserId
	}
	if filter.Type != nil {
		selector["type"] = filter.Type
	}

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing measurements: %w", err)
	}

	var measurements []*Measurement
	if err = cursor.All(ctx, &measurements); err != nil {
		return nil, fmt.Errorf("error decoding measurements: %w", err)
	}

	return measurements, nil
}
