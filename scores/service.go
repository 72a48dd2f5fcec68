package scores

import (
	"context"

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

func (s *service) Latest(ctx context.Context, userId string) (*Score, error) {
	return s.repo.Latest(ctx, userId)
}

func (s *service) History(ctx context.Context, userId string, days int) ([]*Score, error) {
	return s.repo.History(ctx, userId, days)
}
