package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/plemya-health/healthfeed/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("session not found")

const (
	StatusCompleted = "completed"
)

type Service interface {
	List(ctx context.Context, filter *Filter, pagination store.Pagination) ([]*Session, error)
}

// Session is a completed bodywork appointment. Findings is the free-form
// document recorded by the specialist; its shape is not enforced on write,
// so consumers must decode it defensively.
type Session struct {
	Id          *primitive.ObjectID `bson:"_id,omitempty"`
	UserId      *string             `bson:"userId,omitempty"`
	Specialist  *string             `bson:"specialist,omitempty"`
	Source      *string             `bson:"source,omitempty"`
	Status      *string             `bson:"status,omitempty"`
	Findings    interface{}         `bson:"findings,omitempty"`
	SessionDate *time.Time          `bson:"sessionDate,omitempty"`
	CreatedAt   *time.Time          `bson:"createdAt,omitempty"`
}

type Filter struct {
	UserId *string
	Status *string
}
