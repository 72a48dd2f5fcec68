package diagnostics

import (
	"context"

	"github.com/plemya-health/healthfeed/store"
	"go.uber.org/zap"
)

type service struct {
	repo   Repository
	logger *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(repo Repository, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		repo:   repo,
		logger: logger,
	}, nil
}

func (s *service) Get(ctx context.Context, userId string, resultId string) (*Result, error) {
	return s.repo.Get(ctx, userId, resultId)
}

func (s *service) List(ctx context.Context, filter *Filter, pagination store.Pagination) ([]*Result, error) {
	return s.repo.List(ctx, filter, pagination)
}
