package sessions

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
	sessionsCollectionName = "sessions"
)

type Repository interface {
	Service
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(sessionsCollectionName),
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
				{Key: "sessionDate", Value: -1},
			},
			Options: options.Index().
				SetName("UserSessionsByDate"),
		},
	})
	return err
}

func (r *repository) List(ctx context.Context, filter *Filter, pagination store.Pagination) ([]*Session, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "sessionDate", Value: -1}}).
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Offset))

	selector := bson.M{}
	if filter.UserId != nil {
		selector["userId"] = filter.UserId
	}
	if filter.Status != nil {
		selector["status"] = filter.Status
	}

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing sessions: %w", err)
	}

	var sessions []*Session
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("error decoding sessions: %w", err)
	}

	return sessions, nil
}
