package feed

import (
	"sort"
	"time"

	"github.com/plemya-health/healthfeed/diagnostics"
	"github.com/plemya-health/healthfeed/labs"
	"github.com/plemya-health/healthfeed/pointer"
)

const scanMaxScore = 100

// FromDiagnostic dispatches on the test id of a diagnostic row.
func FromDiagnostic(r *diagnostics.Result) UnifiedResult {
	if r.IsQuestionnaire() {
		return FromQuestionnaire(r)
	}
	return FromScan(r)
}

// FromScan normalizes a body-scan execution. Scan scores are on a fixed
// 0-100 scale.
func FromScan(r *diagnostics.Result) UnifiedResult {
	u := UnifiedResult{
		Kind:     KindBodyScan,
		TestId:   r.TestId,
		Score:    r.Score,
		MaxScore: pointer.FromAny(float64(scanMaxScore)),
		Date:     formatDate(r.ExecutedAt),
	}
	if r.Id != nil {
		u.Id = r.Id.Hex()
	}
	if r.Data != nil {
		u.Recommendations = r.Data.Recommendations
		u.Metrics = r.Data.Metrics
	}
	return u
}

// FromQuestionnaire normalizes a questionnaire execution. The score is the
// raw instrument sum; the ceiling and severity come from the instrument
// table.
func FromQuestionnaire(r *diagnostics.Result) UnifiedResult {
	u := UnifiedResult{
		Kind:   KindQuestionnaire,
		TestId: r.TestId,
		Score:  r.Score,
		Date:   formatDate(r.ExecutedAt),
	}
	if r.Id != nil {
		u.Id = r.Id.Hex()
	}
	if r.TestId != nil {
		if instrument, ok := diagnostics.Instruments[*r.TestId]; ok {
			u.MaxScore = pointer.FromAny(instrument.MaxScore)
			u.Title = pointer.FromAny(instrument.ShortName)
		}
		if r.Score != nil {
			if label, ok := diagnostics.Interpretation(*r.TestId, *r.Score); ok {
				u.Severity = pointer.FromAny(label)
			}
		}
	}
	if r.Data != nil {
		u.Recommendations = r.Data.Recommendations
	}
	return u
}

// FromLab normalizes a lab panel. The score is the count of abnormal
// values and the ceiling is the count of tested values. An empty value
// list yields a nil score: "no values tested" is a different state than
// "all values normal", which yields zero.
func FromLab(r *labs.Result) UnifiedResult {
	u := UnifiedResult{
		Kind:      KindLab,
		Category:  r.Category,
		LabValues: r.Values,
		Date:      formatDate(r.TestDate),
	}
	if r.Id != nil {
		u.Id = r.Id.Hex()
	}
	if r.Category != nil {
		u.Title = pointer.FromAny(labs.CategoryName(*r.Category))
	}
	if len(r.Values) > 0 {
		u.Score = pointer.FromAny(float64(r.AbnormalCount()))
		u.MaxScore = pointer.FromAny(float64(len(r.Values)))
	}
	return u
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

// parseDate treats unparseable dates as the zero time so they sort last in
// a descending feed instead of failing the sort.
func parseDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// sortResultsByDateDesc sorts the merged feed newest-first. The sort is
// stable so ties keep the insertion order of the category fan-out.
func sortResultsByDateDesc(items []UnifiedResult) {
	decorated := make([]struct {
		ts   time.Time
		item UnifiedResult
	}, len(items))
	for i, item := range items {
		decorated[i].ts = parseDate(item.Date)
		decorated[i].item = item
	}
	sort.SliceStable(decorated, func(i, j int) bool {
		return decorated[i].ts.After(decorated[j].ts)
	})
	for i := range decorated {
		items[i] = decorated[i].item
	}
}

func sortEventsByDateDesc(items []TimelineEvent) {
	decorated := make([]struct {
		ts   time.Time
		item TimelineEvent
	}, len(items))
	for i, item := range items {
		decorated[i].ts = parseDate(item.Date)
		decorated[i].item = item
	}
	sort.SliceStable(decorated, func(i, j int) bool {
		return decorated[i].ts.After(decorated[j].ts)
	})
	for i := range decorated {
		items[i] = decorated[i].item
	}
}
