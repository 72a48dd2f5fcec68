package users

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const (
	profilesCollectionName = "profiles"
)

type Repository interface {
	Get(ctx context.Context, userId string) (*Profile, error)
	UpdateEmergencyInfo(ctx context.Context, userId string, info EmergencyInfo) error
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(profilesCollectionName),
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
			},
			Options: options.Index().
				SetUnique(true).
				SetName("UniqueUserProfile"),
		},
	})
	return err
}

func (r *repository) Get(ctx context.Context, userId string) (*Profile, error) {
	profile := &Profile{}
	err := r.collection.FindOne(ctx, bson.M{"userId": userId}).Decode(profile)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return profile, nil
}

func (r *repository) UpdateEmergencyInfo(ctx context.Context, userId string, info EmergencyInfo) error {
	selector := bson.M{"userId": userId}
	update := bson.M{
		"$set": bson.M{
			"emergencyInfo": info,
		},
		"$setOnInsert": bson.M{
			"userId": userId,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, selector, update, opts); err != nil {
		return fmt.Errorf("error updating emergency info: %w", err)
	}

	return nil
}
