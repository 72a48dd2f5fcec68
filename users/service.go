package users

import (
	"context"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"github.com/mohae/deepcopy"
	"go.uber.org/zap"
)

// profileCacheSize bounds the in-process profile cache. Profiles change
// rarely; the cache is invalidated on every emergency-info save.
const profileCacheSize = 256

type service struct {
	repo   Repository
	cache  *lru.Cache
	logger *zap.SugaredLogger
	now    func() time.Time
}

var _ Service = &service{}

func NewService(repo Repository, logger *zap.SugaredLogger) (Service, error) {
	cache, err := lru.New(profileCacheSize)
	if err != nil {
		return nil, err
	}

	return &service{
		repo:   repo,
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}, nil
}

func (s *service) GetProfile(ctx context.Context, userId string) (*Profile, error) {
	if cached, ok := s.cache.Get(userId); ok {
		profile := deepcopy.Copy(*cached.(*Profile)).(Profile)
		return &profile, nil
	}

	profile, err := s.repo.Get(ctx, userId)
	if err != nil {
		return nil, err
	}

	s.cache.Add(userId, profile)
	copied := deepcopy.Copy(*profile).(Profile)
	return &copied, nil
}

func (s *service) GetEmergencyInfo(ctx context.Context, userId string) (*EmergencyInfo, error) {
	profile, err := s.GetProfile(ctx, userId)
	if err != nil {
		return nil, err
	}

	return profile.EmergencyInfo, nil
}

func (s *service) SaveEmergencyInfo(ctx context.Context, userId string, info EmergencyInfo) (*EmergencyInfo, error) {
	now := s.now()
	info.UpdatedAt = &now
	for i := range info.EmergencyContacts {
		if info.EmergencyContacts[i].Id == nil {
			id := uuid.NewString()
			info.EmergencyContacts[i].Id = &id
		}
	}

	if err := s.repo.UpdateEmergencyInfo(ctx, userId, info); err != nil {
		return nil, err
	}
	s.cache.Remove(userId)

	return &info, nil
}
