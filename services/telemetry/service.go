package telemetry

import (
	"context"
	"encoding/json"

	"summitos/models"
	"summitos/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// TrackingService produces privacy-filtered position reports for public
// consumption, caching them briefly to keep telemetry provider traffic down.
type TrackingService interface {
	PublicPosition(ctx context.Context) (models.PrivacyFilteredReport, error)
}

// DefaultTrackingService implements TrackingService.
type DefaultTrackingService struct {
	Provider    Provider
	CacheClient *redis.Client
	HomeLat     float64
	HomeLng     float64
}

// PublicPosition returns the current filtered report, serving from cache
// within the TTL. A cache failure only costs a provider round trip.
func (s *DefaultTrackingService) PublicPosition(ctx context.Context) (models.PrivacyFilteredReport, error) {
	logger := utils.GetLogger()

	if s.CacheClient != nil {
		cached, err := s.CacheClient.Get(ctx, utils.TelemetryCacheKey).Result()
		if err == nil {
			var report models.PrivacyFilteredReport
			if err := json.Unmarshal([]byte(cached), &report); err == nil {
				return report, nil
			}
		} else if err != redis.Nil {
			logger.Warn("telemetry cache read failed", zap.Error(err))
		}
	}

	raw, err := s.Provider.GetDriveState(ctx)
	if err != nil {
		return models.PrivacyFilteredReport{}, err
	}

	report := FilterPosition(raw, s.HomeLat, s.HomeLng)

	if s.CacheClient != nil {
		if data, err := json.Marshal(report); err == nil {
			if err := s.CacheClient.Set(ctx, utils.TelemetryCacheKey, data, utils.TelemetryCacheTTL).Err(); err != nil {
				logger.Warn("telemetry cache write failed", zap.Error(err))
			}
		}
	}

	return report, nil
}
