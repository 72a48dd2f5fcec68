package scores

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const (
	scoresCollectionName = "healthScores"
)

type Repository interface {
	Service
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(scoresCollectionName),
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
				{Key: "calculatedAt", Value: -1},
			},
			Options: options.Index().
				SetName("UserScoresByDate"),
		},
	})
	return err
}

func (r *repository) Latest(ctx context.Context, userId string) (*Score, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "calculatedAt", Value: -1}})

	score := &Score{}
	err := r.collection.FindOne(ctx, bson.M{"userId": userId}, opts).Decode(score)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return score, nil
}

func (r *repository) History(ctx context.Context, userId string, days int) ([]*Score, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "calculatedAt", Value: -1}})

	since := time.Now().AddDate(0, 0, -days)
	selector := bson.M{
		"userId":       userId,
		"calculatedAt": bson.M{"$gte": since},
	}

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing health scores: %w", err)
	}

	var scores []*Score
	if err = cursor.All(ctx, &scores); err != nil {
		return nil, fmt.Errorf("error decoding health scores: %w", err)
	}

	return scores, nil
}
