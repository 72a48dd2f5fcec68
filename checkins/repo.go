package checkins

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
	checkinsCollectionName = "checkins"
)

type Repository interface {
	List(ctx context.Context, filter *Filter, pagination store.Pagination) ([]*Checkin, error)
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(checkinsCollectionName),
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
				{Key: "checkedAt", Value: -1},
			},
			Options: options.Index().
				SetName("UserCheckinsByDate"),
		},
	})
	return err
}

func (r *repository) List(ctx context.Context, filter *Filter, pagination store.Pagination) ([]*Checkin, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "checkedAt", Value: -1}}).
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Offset))

	selector := bson.M{}
	if filter.UserId != nil {
		selector["userId"] = filter.UserId
	}

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing check-ins: %w", err)
	}

	var checkins []*Checkin
	if err = cursor.All(ctx, &checkins); err != nil {
		return nil, fmt.Errorf("error decoding check-ins: %w", err)
	}

	return checkins, nil
}
