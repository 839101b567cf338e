package service

import (
	"time"

	"github.com/itsatony/w4b_v3/server/readings/internal/cache"
	"github.com/itsatony/w4b_v3/server/readings/internal/errors"
	"github.com/itsatony/w4b_v3/server/readings/internal/monitoring"
	"github.com/itsatony/w4b_v3/server/readings/internal/repository"
)

// Service contains the readings repository and service-wide dependencies
type Service struct {
	readings   repository.ReadingRepository
	monitoring *monitoring.Service
	cache      cache.StatisticCache
	now        func() time.Time
}

// New creates a new service instance
func New(readings repository.ReadingRepository, mon *monitoring.Service) *Service {
	return &Service{
		readings:   readings,
		monitoring: mon,
		cache:      cache.Noop{},
		now:        time.Now,
	}
}

// WithCache sets the cache aggregates are served from
func (s *Service) WithCache(c cache.StatisticCache) *Service {
	if c != nil {
		s.cache = c
	}
	return s
}

// Validate checks if all required dependencies are initialized
func (s *Service) Validate() error {
	if s.readings == nil {
		return ErrMissingRepository("readings")
	}
	if s.monitoring == nil {
		return errors.NewInternalError("missing monitoring service", nil)
	}
	return nil
}

func ErrMissingRepository(name string) error {
	return errors.NewInternalError("missing repository: "+name, nil)
}
