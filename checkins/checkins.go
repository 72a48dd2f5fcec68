package checkins

import (
	"context"
	"errors"
	"time"

	"github.com/plemya-health/healthfeed/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("check-in not found")

type Service interface {
	List(ctx context.Context, filter *Filter, pagination store.Pagination) ([]*Checkin, error)
	Streak(ctx context.Context, userId string) (int, error)
}

// Checkin is a single daily self-report. All metric values are on a 1-5
// scale.
type Checkin struct {
	Id           *primitive.ObjectID `bson:"_id,omitempty"`
	UserId       *string             `bson:"userId,omitempty"`
	Mood         *int                `bson:"mood,omitempty"`
	EnergyLevel  *int                `bson:"energyLevel,omitempty"`
	SleepQuality *int                `bson:"sleepQuality,omitempty"`
	StressLevel  *int                `bson:"stressLevel,omitempty"`
	Note         *string             `bson:"note,omitempty"`
	CheckedAt    *time.Time          `bson:"checkedAt,omitempty"`
}

type Filter struct {
	UserId *string
}
