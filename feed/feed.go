package feed

import (
	"context"
	"errors"

	"github.com/plemya-health/healthfeed/diagnostics"
	"github.com/plemya-health/healthfeed/labs"
	"github.com/plemya-health/healthfeed/store"
)

var ErrNotFound = errors.New("result not found")

// Kind discriminates which optional fields of a UnifiedResult are
// populated. The category plus the id form the true key of a result; ids
// are only unique within their source category.
type Kind string

const (
	KindBodyScan      Kind = "body_scan"
	KindQuestionnaire Kind = "questionnaire"
	KindLab           Kind = "lab"
)

type Service interface {
	// AllResults merges scans, questionnaires and lab panels into one
	// date-descending feed, truncated to limit. A failing source
	// contributes nothing instead of failing the merge.
	AllResults(ctx context.Context, userId string, limit int) ([]UnifiedResult, error)

	// Result looks a single result up by id, always scoped to the owner.
	Result(ctx context.Context, userId string, resultId string) (*UnifiedResult, error)

	// Timeline merges five event sources into one date-descending feed
	// with post-merge offset/limit pagination. An empty types slice means
	// no type filtering.
	Timeline(ctx context.Context, userId string, pagination store.Pagination, types []string) ([]TimelineEvent, error)

	// Dashboard assembles the home view: the unified feed, the latest
	// health score with its 7-day trend, and recent events.
	Dashboard(ctx context.Context, userId string) (*Dashboard, error)
}

// UnifiedResult is the canonical projection every source record normalizes
// to. Score semantics differ by kind: 0-100 for scans, raw instrument sum
// for questionnaires, count of abnormal values for labs.
type UnifiedResult struct {
	Id              string                        `json:"id"`
	Kind            Kind                          `json:"kind"`
	TestId          *string                       `json:"testId,omitempty"`
	Score           *float64                      `json:"score"`
	MaxScore        *float64                      `json:"maxScore"`
	Date            string                        `json:"date"`
	Title           *string                       `json:"title,omitempty"`
	Severity        *string                       `json:"severity,omitempty"`
	Recommendations []string                      `json:"recommendations,omitempty"`
	Metrics         map[string]diagnostics.Metric `json:"metrics,omitempty"`
	Category        *string                       `json:"category,omitempty"`
	LabValues       []labs.Value                  `json:"labValues,omitempty"`
}

type TimelineEvent struct {
	Id          string  `json:"id"`
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Status      *string `json:"status,omitempty"`
	Date        string  `json:"date"`
	ResultId    *string `json:"resultId,omitempty"`
}

const (
	EventTypeCheckin       = "checkin"
	EventTypeMeasurement   = "measurement"
	EventTypeLab           = "lab"
	EventTypeQuestionnaire = "questionnaire"
	EventTypeMassage       = "massage"
)

const (
	StatusGood     = "good"
	StatusWarning  = "warning"
	StatusCritical = "critical"
)

type Dashboard struct {
	Results      []UnifiedResult  `json:"results"`
	HealthScore  *HealthScoreView `json:"healthScore"`
	ScoreTrend   *float64         `json:"scoreTrend"`
	RecentEvents []TimelineEvent  `json:"recentEvents"`
}

// HealthScoreView is the transport projection of a health-score row.
type HealthScoreView struct {
	Score           *float64 `json:"score"`
	ActivityScore   *float64 `json:"activityScore"`
	SleepScore      *float64 `json:"sleepScore"`
	NutritionScore  *float64 `json:"nutritionScore"`
	MentalScore     *float64 `json:"mentalScore"`
	RecoveryScore   *float64 `json:"recoveryScore"`
	BiometricsScore *float64 `json:"biometricsScore"`
	CalculatedAt    string   `json:"calculatedAt"`
}
