package service

import (
	"context"
	"fmt"

	"github.com/itsatony/w4b_v3/server/readings/internal/errors"
	"github.com/itsatony/w4b_v3/server/readings/internal/models"
	"github.com/itsatony/w4b_v3/server/readings/internal/monitoring"
	"github.com/itsatony/w4b_v3/server/readings/internal/stats"
	"github.com/itsatony/w4b_v3/server/readings/internal/validation"
	nuts "github.com/vaudience/go-nuts"
)

// ReadingService handles reading ingestion and statistics
type ReadingService interface {
	RecordReading(ctx context.Context, deviceUUID string, input models.ReadingInput) (*models.Reading, error)
	ListReadings(ctx context.Context, filter models.ReadingFilter) ([]models.Reading, error)
	ComputeStatistic(ctx context.Context, filter models.ReadingFilter, stat models.Statistic) (*models.StatisticResult, error)
	ComputeQuartiles(ctx context.Context, filter models.ReadingFilter) (*models.QuartileResult, error)
	Ping(ctx context.Context) error
}

var _ ReadingService = (*Service)(nil)

func (s *Service) RecordReading(ctx context.Context, deviceUUID string, input models.ReadingInput) (*models.Reading, error) {
	reading, err := validation.ValidateReading(deviceUUID, input, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.readings.Insert(ctx, reading); err != nil {
		return nil, err
	}
	if err := s.cache.Invalidate(ctx, reading.DeviceUUID); err != nil {
		nuts.L.Warnf("[Service] Failed to invalidate cached aggregates for %s: %v", reading.DeviceUUID, err)
	}

	s.monitoring.RecordEvent(monitoring.EventReadingRecorded, map[string]string{
		"device_uuid": reading.DeviceUUID,
		"type":        string(reading.Type),
	})
	return reading, nil
}

func (s *Service) ListReadings(ctx context.Context, filter models.ReadingFilter) ([]models.Reading, error) {
	return s.readings.Query(ctx, filter)
}

func (s *Service) ComputeStatistic(ctx context.Context, filter models.ReadingFilter, stat models.Statistic) (*models.StatisticResult, error) {
	if _, err := validation.ValidateSensorType(string(filter.Type)); err != nil {
		return nil, err
	}

	key := s.cacheKey(ctx, filter, string(stat))
	var cached models.StatisticResult
	if s.loadCached(ctx, key, &cached) {
		return &cached, nil
	}

	values, err := s.aggregateValues(ctx, filter, string(stat))
	if err != nil {
		return nil, err
	}

	value, err := stats.Compute(stat, values)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to compute %s", stat), err)
	}

	result := &models.StatisticResult{
		DeviceUUID: filter.DeviceUUID,
		DeviceType: filter.Type,
		Value:      value,
	}
	s.storeCached(ctx, key, result)
	return result, nil
}

func (s *Service) ComputeQuartiles(ctx context.Context, filter models.ReadingFilter) (*models.QuartileResult, error) {
	if _, err := validation.ValidateSensorType(string(filter.Type)); err != nil {
		return nil, err
	}

	key := s.cacheKey(ctx, filter, "quartiles")
	var cached models.QuartileResult
	if s.loadCached(ctx, key, &cached) {
		return &cached, nil
	}

	values, err := s.aggregateValues(ctx, filter, "quartiles")
	if err != nil {
		return nil, err
	}

	first, third, err := stats.Quartiles(values)
	if err != nil {
		return nil, errors.NewInternalError("failed to compute quartiles", err)
	}

	result := &models.QuartileResult{
		DeviceUUID:    filter.DeviceUUID,
		DeviceType:    filter.Type,
		FirstQuartile: first,
		ThirdQuartile: third,
	}
	s.storeCached(ctx, key, result)
	return result, nil
}

func (s *Service) Ping(ctx context.Context) error {
	return s.readings.Ping(ctx)
}

// cacheKey pins the device generation before storage is read. An empty key
// disables caching for the request. Cache failures degrade to recomputing.
func (s *Service) cacheKey(ctx context.Context, filter models.ReadingFilter, stat string) string {
	key, err := s.cache.Key(ctx, filter, stat)
	if err != nil {
		nuts.L.Warnf("[Service] Cache key for %s failed: %v", stat, err)
		return ""
	}
	return key
}

func (s *Service) loadCached(ctx context.Context, key string, dst any) bool {
	if key == "" {
		return false
	}
	hit, err := s.cache.Load(ctx, key, dst)
	if err != nil {
		nuts.L.Warnf("[Service] Cache lookup %s failed: %v", key, err)
		return false
	}
	return hit
}

func (s *Service) storeCached(ctx context.Context, key string, value any) {
	if key == "" {
		return
	}
	if err := s.cache.Store(ctx, key, value); err != nil {
		nuts.L.Warnf("[Service] Cache store %s failed: %v", key, err)
	}
}

// aggregateValues loads the values an aggregate runs over and turns an
// empty set into an EmptyResultError
func (s *Service) aggregateValues(ctx context.Context, filter models.ReadingFilter, stat string) ([]int, error) {
	values, err := s.readings.Values(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		s.monitoring.RecordEvent(monitoring.EventEmptyAggregate, map[string]string{
			"device_uuid": filter.DeviceUUID,
			"type":        string(filter.Type),
			"stat":        stat,
		})
		return nil, errors.NewEmptyResultError(
			fmt.Errorf("%s for device %s: %w", stat, filter.DeviceUUID, stats.ErrEmptyResult))
	}
	return values, nil
}
