package feed

import (
	"context"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/plemya-health/healthfeed/checkins"
	"github.com/plemya-health/healthfeed/labs"
	"github.com/plemya-health/healthfeed/measurements"
	"github.com/plemya-health/healthfeed/pointer"
	"github.com/plemya-health/healthfeed/sessions"
	"github.com/plemya-health/healthfeed/store"
	"golang.org/x/sync/errgroup"
)

func (s *service) Timeline(ctx context.Context, userId string, pagination store.Pagination, types []string) ([]TimelineEvent, error) {
	if pagination.Limit <= 0 {
		return []TimelineEvent{}, nil
	}

	// Every source is fetched with offset+limit items so enough material
	// survives the merge; pagination is applied post-merge, which keeps
	// page boundaries correct when sources have uneven density.
	page := store.Pagination{Limit: pagination.Offset + pagination.Limit}

	var checkinEvents, measurementEvents, labEvents, questionnaireEvents, sessionEvents []TimelineEvent

	g := new(errgroup.Group)
	g.Go(func() error {
		checkinEvents = s.checkinEvents(ctx, userId, page)
		return nil
	})
	g.Go(func() error {
		measurementEvents = s.measurementEvents(ctx, userId, page)
		return nil
	})
	g.Go(func() error {
		labEvents = s.labEvents(ctx, userId, page)
		return nil
	})
	g.Go(func() error {
		questionnaireEvents = s.questionnaireEvents(ctx, userId, page)
		return nil
	})
	g.Go(func() error {
		sessionEvents = s.sessionEvents(ctx, userId, page)
		return nil
	})
	_ = g.Wait()

	merged := make([]TimelineEvent, 0,
		len(checkinEvents)+len(measurementEvents)+len(labEvents)+len(questionnaireEvents)+len(sessionEvents))
	merged = append(merged, checkinEvents...)
	merged = append(merged, measurementEvents...)
	merged = append(merged, labEvents...)
	merged = append(merged, questionnaireEvents...)
	merged = append(merged, sessionEvents...)

	if len(types) > 0 {
		allowed := mapset.NewSet[string](types...)
		filtered := make([]TimelineEvent, 0, len(merged))
		for _, event := range merged {
			if allowed.Contains(event.Type) {
				filtered = append(filtered, event)
			}
		}
		merged = filtered
	}

	sortEventsByDateDesc(merged)

	if pagination.Offset >= len(merged) {
		return []TimelineEvent{}, nil
	}
	end := pagination.Offset + pagination.Limit
	if end > len(merged) {
		end = len(merged)
	}
	return merged[pagination.Offset:end], nil
}

func (s *service) checkinEvents(ctx context.Context, userId string, page store.Pagination) []TimelineEvent {
	rows, err := s.checkins.List(ctx, &checkins.Filter{UserId: &userId}, page)
	if err != nil {
		s.logger.Warnw("check-in events unavailable", "userId", userId, "error", err)
		return nil
	}

	events := make([]TimelineEvent, 0, len(rows))
	for _, row := range rows {
		if row.Id == nil {
			continue
		}
		events = append(events, TimelineEvent{
			Id:          fmt.Sprintf("checkin-%s", row.Id.Hex()),
			Type:        EventTypeCheckin,
			Title:       "Check-in",
			Description: checkinDescription(row),
			Icon:        "✅",
			Date:        formatDate(row.CheckedAt),
		})
	}
	return events
}

func (s *service) measurementEvents(ctx context.Context, userId string, page store.Pagination) []TimelineEvent {
	rows, err := s.measurements.List(ctx, &measurements.Filter{UserId: &userId}, page)
	if err != nil {
		s.logger.Warnw("measurement events unavailable", "userId", userId, "error", err)
		return nil
	}

	events := make([]TimelineEvent, 0, len(rows))
	for _, row := range rows {
		if row.Id == nil || row.Type == nil {
			continue
		}
		events = append(events, TimelineEvent{
			Id:          fmt.Sprintf("measurement-%s", row.Id.Hex()),
			Type:        EventTypeMeasurement,
			Title:       measurementTitle(*row.Type),
			Description: measurementDescription(*row.Type, row.Value),
			Icon:        measurementIcon(*row.Type),
			Date:        formatDate(row.MeasuredAt),
		})
	}
	return events
}

func (s *service) labEvents(ctx context.Context, userId string, page store.Pagination) []TimelineEvent {
	rows, err := s.labs.List(ctx, &labs.Filter{UserId: &userId}, page)
	if err != nil {
		s.logger.Warnw("lab events unavailable", "userId", userId, "error", err)
		return nil
	}

	events := make([]TimelineEvent, 0, len(rows))
	for _, row := range rows {
		if row.Id == nil {
			continue
		}
		status := StatusGood
		abnormal := row.AbnormalCount()
		if abnormal > 0 {
			status = StatusWarning
		}

		title := "Lab results"
		if row.Category != nil {
			title = labs.CategoryName(*row.Category)
		}
		description := fmt.Sprintf("%d values", len(row.Values))
		if abnormal > 0 {
			description = fmt.Sprintf("%d values · %d abnormal", len(row.Values), abnormal)
		}

		events = append(events, TimelineEvent{
			Id:          fmt.Sprintf("lab-%s", row.Id.Hex()),
			Type:        EventTypeLab,
			Title:       title,
			Description: description,
			Icon:        "🔬",
			Status:      pointer.FromAny(status),
			Date:        formatDate(row.TestDate),
			ResultId:    pointer.FromAny(row.Id.Hex()),
		})
	}
	return events
}

func (s *service) questionnaireEvents(ctx context.Context, userId string, page store.Pagination) []TimelineEvent {
	rows := s.fetchDiagnostics(ctx, userId, true, page)

	events := make([]TimelineEvent, 0, len(rows))
	for _, row := range rows {
		if row.Id == nil {
			continue
		}
		unified := FromQuestionnaire(row)
		event := TimelineEvent{
			Id:          fmt.Sprintf("questionnaire-%s", row.Id.Hex()),
			Type:        EventTypeQuestionnaire,
			Title:       pointer.ToString(unified.Title),
			Description: questionnaireDescription(unified),
			Icon:        "📝",
			Date:        unified.Date,
			ResultId:    pointer.FromAny(row.Id.Hex()),
		}
		if unified.Severity != nil {
			event.Status = pointer.FromAny(severityStatus(*unified.Severity))
		}
		events = append(events, event)
	}
	return events
}

func (s *service) sessionEvents(ctx context.Context, userId string, page store.Pagination) []TimelineEvent {
	filter := &sessions.Filter{
		UserId: &userId,
		Status: pointer.FromAny(sessions.StatusCompleted),
	}
	rows, err := s.sessions.List(ctx, filter, page)
	if err != nil {
		s.logger.Warnw("session events unavailable", "userId", userId, "error", err)
		return nil
	}

	events := make([]TimelineEvent, 0, len(rows))
	for _, row := range rows {
		if row.Id == nil {
			continue
		}
		description := pointer.ToString(row.Specialist)
		if description == "" {
			description = pointer.ToString(row.Source)
		}
		events = append(events, TimelineEvent{
			Id:          fmt.Sprintf("massage-%s", row.Id.Hex()),
			Type:        EventTypeMassage,
			Title:       "Bodywork session",
			Description: description,
			Icon:        "💆",
			Date:        formatDate(row.SessionDate),
		})
	}
	return events
}

func checkinDescription(row *checkins.Checkin) string {
	description := ""
	if row.Mood != nil {
		description = fmt.Sprintf("Mood %d/5", *row.Mood)
	}
	if row.EnergyLevel != nil {
		if description != "" {
			description += " · "
		}
		description += fmt.Sprintf("Energy %d/5", *row.EnergyLevel)
	}
	return description
}

func questionnaireDescription(unified UnifiedResult) string {
	if unified.Score == nil || unified.MaxScore == nil {
		return ""
	}
	description := fmt.Sprintf("Score %g/%g", *unified.Score, *unified.MaxScore)
	if unified.Severity != nil {
		description += " · " + *unified.Severity
	}
	return description
}

func severityStatus(severity string) string {
	switch severity {
	case "minimal", "mild", "low":
		return StatusGood
	case "moderate", "moderately severe":
		return StatusWarning
	default:
		return StatusCritical
	}
}

func measurementTitle(measurementType string) string {
	switch measurementType {
	case measurements.TypeWeight:
		return "Weight"
	case measurements.TypeBloodPressure:
		return "Blood pressure"
	case measurements.TypePulse:
		return "Pulse"
	case measurements.TypeTemperature:
		return "Temperature"
	default:
		return "Measurement"
	}
}

func measurementIcon(measurementType string) string {
	switch measurementType {
	case measurements.TypeWeight:
		return "⚖️"
	case measurements.TypeBloodPressure:
		return "💓"
	case measurements.TypePulse:
		return "💗"
	case measurements.TypeTemperature:
		return "🌡️"
	default:
		return "📏"
	}
}

func measurementDescription(measurementType string, value map[string]float64) string {
	switch measurementType {
	case measurements.TypeWeight:
		return fmt.Sprintf("%g kg", value["kg"])
	case measurements.TypeBloodPressure:
		return fmt.Sprintf("%g/%g mmHg", value["systolic"], value["diastolic"])
	case measurements.TypePulse:
		return fmt.Sprintf("%g bpm", value["bpm"])
	case measurements.TypeTemperature:
		return fmt.Sprintf("%g °C", value["celsius"])
	default:
		return ""
	}
}
