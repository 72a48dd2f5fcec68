package diagnostics

import (
	"context"
	"errors"
	"time"

	"github.com/plemya-health/healthfeed/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("diagnostic result not found")

type Service interface {
	Get(ctx context.Context, userId string, resultId string) (*Result, error)
	List(ctx context.Context, filter *Filter, pagination store.Pagination) ([]*Result, error)
}

// Result is a single row of the diagnostic results collection. Body-scan
// and questionnaire executions share the shape; TestId discriminates.
type Result struct {
	Id             *primitive.ObjectID `bson:"_id,omitempty"`
	UserId         *string             `bson:"userId,omitempty"`
	TestId         *string             `bson:"testId,omitempty"`
	Score          *float64            `bson:"score,omitempty"`
	AiConfidence   *float64            `bson:"aiConfidence,omitempty"`
	Data           *ResultData         `bson:"data,omitempty"`
	ExecutedAt     *time.Time          `bson:"executedAt,omitempty"`
	ExecutionLevel *string             `bson:"executionLevel,omitempty"`
	CreatedAt      *time.Time          `bson:"createdAt,omitempty"`
}

type ResultData struct {
	Metrics           map[string]Metric `bson:"metrics,omitempty"`
	Recommendations   []string          `bson:"recommendations,omitempty"`
	LandmarksDetected *int              `bson:"landmarksDetected,omitempty"`
	ProcessedAt       *time.Time        `bson:"processedAt,omitempty"`
	MediaUrl          *string           `bson:"mediaUrl,omitempty"`
}

type Metric struct {
	Score  float64 `bson:"score" json:"score"`
	Status string  `bson:"status" json:"status"`
	Detail string  `bson:"detail,omitempty" json:"detail,omitempty"`
}

type Filter struct {
	UserId *string
	TestId *string

	// Questionnaires restricts results to questionnaire executions when true,
	// or excludes them when false.
	Questionnaires *bool
}

func (r *Result) IsQuestionnaire() bool {
	if r.TestId == nil {
		return false
	}
	return IsQuestionnaire(*r.TestId)
}
