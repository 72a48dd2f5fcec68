package labs

import (
	"context"
	"errors"
	"time"

	"github.com/plemya-health/healthfeed/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("lab result not found")

const (
	ValueStatusNormal = "normal"
	ValueStatusLow    = "low"
	ValueStatusHigh   = "high"
)

type Service interface {
	Get(ctx context.Context, userId string, resultId string) (*Result, error)
	List(ctx context.Context, filter *Filter, pagination store.Pagination) ([]*Result, error)
}

// Result is one lab panel (e.g. blood biochemistry) extracted by the bot
// from an uploaded report.
type Result struct {
	Id        *primitive.ObjectID `bson:"_id,omitempty"`
	UserId    *string             `bson:"userId,omitempty"`
	Category  *string             `bson:"category,omitempty"`
	Values    []Value             `bson:"values,omitempty"`
	TestDate  *time.Time          `bson:"testDate,omitempty"`
	CreatedAt *time.Time          `bson:"createdAt,omitempty"`
}

type Value struct {
	Name           string  `bson:"name" json:"name"`
	Value          float64 `bson:"value" json:"value"`
	Unit           *string `bson:"unit,omitempty" json:"unit,omitempty"`
	ReferenceRange *string `bson:"referenceRange,omitempty" json:"referenceRange,omitempty"`
	Status         string  `bson:"status" json:"status"`
}

type Filter struct {
	UserId   *string
	Category *string
}

var categoryNames = map[string]string{
	"blood_general": "Complete blood count",
	"blood_biochem": "Blood biochemistry",
	"hormones":      "Hormone panel",
	"vitamins":      "Vitamins and trace elements",
	"urine":         "Urinalysis",
	"lipids":        "Lipid panel",
}

// CategoryName returns a display name for a lab category, falling back to
// a generic label for categories the bot starts extracting later.
func CategoryName(category string) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "Lab results"
}

// AbnormalCount returns the number of values whose status is not normal.
func (r *Result) AbnormalCount() int {
	count := 0
	for _, v := range r.Values {
		if v.Status != ValueStatusNormal {
			count++
		}
	}
	return count
}
