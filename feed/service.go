package feed

import (
	"context"
	"errors"

	"github.com/plemya-health/healthfeed/checkins"
	"github.com/plemya-health/healthfeed/config"
	"github.com/plemya-health/healthfeed/diagnostics"
	"github.com/plemya-health/healthfeed/labs"
	"github.com/plemya-health/healthfeed/measurements"
	"github.com/plemya-health/healthfeed/pointer"
	"github.com/plemya-health/healthfeed/scores"
	"github.com/plemya-health/healthfeed/sessions"
	"github.com/plemya-health/healthfeed/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const scoreTrendDays = 7

type service struct {
	diagnostics  diagnostics.Service
	labs         labs.Service
	checkins     checkins.Service
	measurements measurements.Service
	sessions     sessions.Service
	scores       scores.Service
	defaultLimit int
	logger       *zap.SugaredLogger
}

var _ Service = &service{}

type Params struct {
	fx.In

	Diagnostics  diagnostics.Service
	Labs         labs.Service
	Checkins     checkins.Service
	Measurements measurements.Service
	Sessions     sessions.Service
	Scores       scores.Service
	Config       *config.Config
	Logger       *zap.SugaredLogger
}

func NewService(p Params) (Service, error) {
	return &service{
		diagnostics:  p.Diagnostics,
		labs:         p.Labs,
		checkins:     p.Checkins,
		measurements: p.Measurements,
		sessions:     p.Sessions,
		scores:       p.Scores,
		defaultLimit: p.Config.DefaultFeedLimit,
		logger:       p.Logger,
	}, nil
}

func (s *service) AllResults(ctx context.Context, userId string, limit int) ([]UnifiedResult, error) {
	if limit <= 0 {
		return []UnifiedResult{}, nil
	}

	page := store.Pagination{Limit: limit}

	// The fan-out settles every branch: a failed category is logged and
	// replaced with an empty slice, so one failing source never blanks
	// the feed. Branches never report errors to the group.
	var scanRows, questionnaireRows []*diagnostics.Result
	var labRows []*labs.Result

	g := new(errgroup.Group)
	g.Go(func() error {
		scanRows = s.fetchDiagnostics(ctx, userId, false, page)
		return nil
	})
	g.Go(func() error {
		questionnaireRows = s.fetchDiagnostics(ctx, userId, true, page)
		return nil
	})
	g.Go(func() error {
		labRows = s.fetchLabs(ctx, userId, page)
		return nil
	})
	_ = g.Wait()

	unified := make([]UnifiedResult, 0, len(scanRows)+len(questionnaireRows)+len(labRows))
	for _, r := range scanRows {
		unified = append(unified, FromScan(r))
	}
	for _, r := range questionnaireRows {
		unified = append(unified, FromQuestionnaire(r))
	}
	for _, r := range labRows {
		unified = append(unified, FromLab(r))
	}

	sortResultsByDateDesc(unified)
	if len(unified) > limit {
		unified = unified[:limit]
	}

	return unified, nil
}

func (s *service) Result(ctx context.Context, userId string, resultId string) (*UnifiedResult, error) {
	diagnostic, err := s.diagnostics.Get(ctx, userId, resultId)
	if err == nil {
		result := FromDiagnostic(diagnostic)
		return &result, nil
	} else if !errors.Is(err, diagnostics.ErrNotFound) {
		return nil, err
	}

	lab, err := s.labs.Get(ctx, userId, resultId)
	if err == nil {
		result := FromLab(lab)
		return &result, nil
	} else if !errors.Is(err, labs.ErrNotFound) {
		return nil, err
	}

	return nil, ErrNotFound
}

func (s *service) Dashboard(ctx context.Context, userId string) (*Dashboard, error) {
	dashboard := &Dashboard{
		Results:      []UnifiedResult{},
		RecentEvents: []TimelineEvent{},
	}

	g := new(errgroup.Group)
	g.Go(func() error {
		results, err := s.AllResults(ctx, userId, s.defaultLimit)
		if err != nil {
			s.logger.Warnw("dashboard results unavailable", "userId", userId, "error", err)
			return nil
		}
		dashboard.Results = results
		return nil
	})
	g.Go(func() error {
		dashboard.HealthScore, dashboard.ScoreTrend = s.fetchScore(ctx, userId)
		return nil
	})
	g.Go(func() error {
		events, err := s.Timeline(ctx, userId, store.Pagination{Limit: 5}, nil)
		if err != nil {
			s.logger.Warnw("dashboard events unavailable", "userId", userId, "error", err)
			return nil
		}
		dashboard.RecentEvents = events
		return nil
	})
	_ = g.Wait()

	return dashboard, nil
}

func (s *service) fetchDiagnostics(ctx context.Context, userId string, questionnaires bool, page store.Pagination) []*diagnostics.Result {
	filter := &diagnostics.Filter{
		UserId:         &userId,
		Questionnaires: &questionnaires,
	}
	rows, err := s.diagnostics.List(ctx, filter, page)
	if err != nil {
		s.logger.Warnw("diagnostic fetch failed, continuing with empty set",
			"userId", userId, "questionnaires", questionnaires, "error", err)
		return nil
	}
	return rows
}

func (s *service) fetchLabs(ctx context.Context, userId string, page store.Pagination) []*labs.Result {
	rows, err := s.labs.List(ctx, &labs.Filter{UserId: &userId}, page)
	if err != nil {
		s.logger.Warnw("lab fetch failed, continuing with empty set",
			"userId", userId, "error", err)
		return nil
	}
	return rows
}

// fetchScore returns the latest health score and its delta against the
// oldest score of the trend window. Either can be absent.
func (s *service) fetchScore(ctx context.Context, userId string) (*HealthScoreView, *float64) {
	latest, err := s.scores.Latest(ctx, userId)
	if err != nil {
		if !errors.Is(err, scores.ErrNotFound) {
			s.logger.Warnw("health score unavailable", "userId", userId, "error", err)
		}
		return nil, nil
	}

	view := &HealthScoreView{
		Score:           latest.Score,
		ActivityScore:   latest.ActivityScore,
		SleepScore:      latest.SleepScore,
		NutritionScore:  latest.NutritionScore,
		MentalScore:     latest.MentalScore,
		RecoveryScore:   latest.RecoveryScore,
		BiometricsScore: latest.BiometricsScore,
		CalculatedAt:    formatDate(latest.CalculatedAt),
	}

	history, err := s.scores.History(ctx, userId, scoreTrendDays)
	if err != nil {
		s.logger.Warnw("score history unavailable", "userId", userId, "error", err)
		return view, nil
	}
	if latest.Score == nil || len(history) < 2 {
		return view, nil
	}

	// History is newest-first; the trend compares against the window's
	// oldest entry.
	oldest := history[len(history)-1]
	if oldest.Score == nil {
		return view, nil
	}
	return view, pointer.FromAny(*latest.Score - *oldest.Score)
}
