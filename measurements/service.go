package measurements

import (
	"context"

	"github.com/plemya-health/healthfeed/store"
	"go.uber.org/zap"
)

// latestWindow bounds the scan for the latest reading of each type.
const latestWindow = 50

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

func (s *service) List(ctx context.Context, filter *Filter, pagination store.Pagination) ([]*Measurement, error) {
	return s.repo.List(ctx, filter, pagination)
}

func (s *service) Latest(ctx context.Context, userId string) (map[string]*Measurement, error) {
	rows, err := s.repo.List(ctx, &Filter{UserId: &userId}, store.Pagination{Limit: latestWindow})
	if err != nil {
		return nil, err
	}

	// Rows are newest-first, so the first occurrence of a type wins.
	latest := make(map[string]*Measurement)
	for _, row := range rows {
		if row.Type == nil {
			continue
		}
		if _, ok := latest[*row.Type]; !ok {
			latest[*row.Type] = row
		}
	}

	return latest, nil
}
