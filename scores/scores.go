package scores

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("health score not found")

type Service interface {
	Latest(ctx context.Context, userId string) (*Score, error)
	History(ctx context.Context, userId string, days int) ([]*Score, error)
}

// Score is a precomputed health-score row. The scoring pipeline runs
// upstream; this service only reads the results.
type Score struct {
	Id              *primitive.ObjectID `bson:"_id,omitempty"`
	UserId          *string             `bson:"userId,omitempty"`
	Score           *float64            `bson:"score,omitempty"`
	ActivityScore   *float64            `bson:"activityScore,omitempty"`
	SleepScore      *float64            `bson:"sleepScore,omitempty"`
	NutritionScore  *float64            `bson:"nutritionScore,omitempty"`
	MentalScore     *float64            `bson:"mentalScore,omitempty"`
	RecoveryScore   *float64            `bson:"recoveryScore,omitempty"`
	BiometricsScore *float64            `bson:"biometricsScore,omitempty"`
	CalculatedAt    *time.Time          `bson:"calculatedAt,omitempty"`
}
