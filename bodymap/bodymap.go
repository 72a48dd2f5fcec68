package bodymap

import "context"

type Severity string

const (
	SeverityNormal    Severity = "normal"
	SeverityAttention Severity = "attention"
	SeverityConcern   Severity = "concern"
)

// SeverityForIntensity thresholds a 0-10 intensity value.
func SeverityForIntensity(intensity float64) Severity {
	switch {
	case intensity <= 3:
		return SeverityNormal
	case intensity <= 6:
		return SeverityAttention
	default:
		return SeverityConcern
	}
}

type Service interface {
	// Findings returns at most one finding per zone, the most recent one,
	// reduced over the user's recent completed sessions.
	Findings(ctx context.Context, userId string) ([]*Finding, error)
}

type Finding struct {
	ZoneId      string   `json:"zoneId"`
	Label       string   `json:"label"`
	Severity    Severity `json:"severity"`
	Intensity   float64  `json:"intensity"`
	Description string   `json:"description,omitempty"`
	Source      string   `json:"source,omitempty"`
	SessionDate string   `json:"sessionDate"`
}
