package diagnostics

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
	resultsCollectionName = "diagnosticResults"
)

type Repository interface {
	Service
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(resultsCollectionName),
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
				{Key: "executedAt", Value: -1},
			},
			Options: options.Index().
				SetName("UserResultsByDate"),
		},
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "testId", Value: 1},
				{Key: "executedAt", Value: -1},
			},
			Options: options.Index().
				SetName("UserResultsByTest"),
		},
	})
	return err
}

func (r *repository) Get(ctx context.Context, userId string, resultId string) (*Result, error) {
	resultObjId, err := primitive.ObjectIDFromHex(resultId)
	if err != nil {
		return nil, ErrNotFound
	}

	// The owner id is always part of the selector so a leaked result id
	// cannot be used to read another user's record.
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
		SetSort(bson.D{{Key: "executedAt", Value: -1}}).
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Offset))

	selector := bson.M{}
	if filter.UserId != nil {
		selector["userId"] = filter.UserId
	}
	if filter.TestId != nil {
		selector["testId"] = filter.TestId
	}
	if filter.Questionnaires != nil {
		if *filter.Questionnaires {
			selector["testId"] = bson.M{"$in": questionnaireTestIds()}
		} else {
			selector["testId"] = bson.M{"$nin": questionnaireTestIds()}
		}
	}

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing diagnostic results: %w", err)
	}

	var results []*Result
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error decoding diagnostic results: %w", err)
	}

	return results, nil
}
