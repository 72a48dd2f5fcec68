package checkins

import (
	"context"
	"time"

	"github.com/plemya-health/healthfeed/store"
	"go.uber.org/zap"
)

type service struct {
	repo   Repository
	logger *zap.SugaredLogger
	now    func() time.Time
}

var _ Service = &service{}

func NewService(repo Repository, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}, nil
}

func (s *service) List(ctx context.Context, filter *Filter, pagination store.Pagination) ([]*Checkin, error) {
	return s.repo.List(ctx, filter, pagination)
}

func (s *service) Streak(ctx context.Context, userId string) (int, error) {
	rows, err := s.repo.List(ctx, &Filter{UserId: &userId}, store.Pagination{Limit: StreakLookbackDays})
	if err != nil {
		return 0, err
	}
	return Streak(s.now(), rows), nil
}
