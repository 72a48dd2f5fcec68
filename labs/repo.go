package labs

import (
	"context"
	"fmt"

	"github.com/plemya-health/healthfeed/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const (
	labsCollectionName = "labResults"
)

type Repository interface {
	Service
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(labsCollectionName),
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
				{Key: "testDate", Value: -1},
			},
			Options: options.Index().
				SetName("UserLabsByDate"),
		},
	})
	return err
}

func (r *repository) Get(ctx context.Context, userId string, resultId string) (*Result, error) {
	resultObjId, err := primitive.ObjectIDFromHex(resultId)
	if err != nil {
		return nil, ErrNotFound
	}

	selector := bson.M{
		"_id":    resultObjId,
		"userId": userId,
	}

	result := &Result{}
	err = r.collection.FindOne(ctx, selector).Decode(result)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *repository) List(ctx context.Context, filter *Filter, pagination store.Pagination) ([]*Result, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "testDate", Value: -1}}).
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Offset))

	selector := bson.M{}
	if filter.UserId != nil {
		selector["userId"] = filter.UserId
	}
	if filter.Category != nil {
		selector["category"] = filter.Category
	}

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing lab results: %w", err)
	}

	var results []*Result
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error decoding lab results: %w", err)
	}

	return results, nil
}
