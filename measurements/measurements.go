package measurements

import (
	"context"
	"errors"
	"time"

	"github.com/plemya-health/healthfeed/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("measurement not found")

const (
	TypeWeight        = "weight"
	TypeBloodPressure = "blood_pressure"
	TypePulse         = "pulse"
	TypeTemperature   = "temperature"
)

// Types lists every supported measurement type in display order.
var Types = []string{TypeWeight, TypeBloodPressure, TypePulse, TypeTemperature}

type Service interface {
	List(ctx context.Context, filter *Filter, pagination store.Pagination) ([]*Measurement, error)

	// Latest reduces a recent window to at most one measurement per type,
	// the newest one. Types with no measurement in the window are absent
	// from the map.
	Latest(ctx context.Context, userId string) (map[string]*Measurement, error)
}

// Measurement is a single biometric reading. Value keys depend on the type:
// weight has "kg", blood_pressure has "systolic"/"diastolic", pulse has
// "bpm", temperature has "celsius".
type Measurement struct {
	Id         *primitive.ObjectID `bson:"_id,omitempty"`
	UserId     *string             `bson:"userId,omitempty"`
	Type       *string             `bson:"type,omitempty"`
	Value      map[string]float64  `bson:"value,omitempty"`
	MeasuredAt *time.Time          `bson:"measuredAt,omitempty"`
	CreatedAt  *time.Time          `bson:"createdAt,omitempty"`
}

type Filter struct {
	UserId *string
	Type   *string
}
