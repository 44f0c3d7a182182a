package analytics

import (
	"context"
	"fmt"
	"time"

	"saunie/internal/shared/constants"
	"saunie/pkg/cache"
)

const upcomingTripsShown = 5

// Service defines the analytics service interface
type Service interface {
	GetDashboard(ctx context.Context) (*Dashboard, error)
	SetCacheService(cacheService cache.Service)
}

// service implements the Service interface
type service struct {
	repo         Repository
	cacheService cache.Service
	now          func() time.Time
}

// NewService creates a new analytics service instance
func NewService(repo Repository) Service {
	return &service{
		repo:         repo,
		cacheService: cache.NewNoopService(),
		now:          time.Now,
	}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	if cacheService != nil {
		s.cacheService = cacheService
	}
}

func (s *service) GetDashboard(ctx context.Context) (*Dashboard, error) {
	var dashboard Dashboard
	err := s.cacheService.GetOrSet(ctx, constants.CACHE_KEY_ANALYTICS_DASHBOARD, constants.TTL_ANALYTICS_DASHBOARD,
		func() (interface{}, error) {
			return s.buildDashboard(ctx)
		}, &dashboard)
	if err != nil {
		return nil, err
	}
	return &dashboard, nil
}

func (s *service) buildDashboard(ctx context.Context) (Dashboard, error) {
	trips, err := s.repo.ListTripFigures(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("failed to get dashboard stats: %w", err)
	}
	patrons, err := s.repo.CountPatrons(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("failed to get dashboard stats: %w", err)
	}
	return BuildDashboard(trips, patrons, s.now(), upcomingTripsShown), nil
}
