// Package admin aggregates the operations dashboard's analytics reads.
// The endpoints return precomputed summaries; this client treats them as
// opaque and caches per date range, since the dashboard re-requests the
// same range on every tab switch.
package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/jyush98/jason-co-ecom-sub004/internal/auth"
	"github.com/jyush98/jason-co-ecom-sub004/internal/dto"
	"github.com/jyush98/jason-co-ecom-sub004/internal/pkg/logger"
	"github.com/jyush98/jason-co-ecom-sub004/pkg/api"
)

type AnalyticsService struct {
	api    *api.Client
	tokens auth.TokenSource
	cache  *cache.Cache
	logger logger.ILogger
}

func NewAnalyticsService(client *api.Client, tokens auth.TokenSource, ttl time.Duration, log logger.ILogger) *AnalyticsService {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &AnalyticsService{
		api:    client,
		tokens: tokens,
		cache:  cache.New(ttl, 10*time.Minute),
		logger: log,
	}
}

func (s *AnalyticsService) Revenue(ctx context.Context, dateRange dto.DateRange) ([]dto.RevenueDataPoint, error) {
	key := cacheKey("revenue", dateRange)
	if x, found := s.cache.Get(key); found {
		return x.([]dto.RevenueDataPoint), nil
	}

	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	var points []dto.RevenueDataPoint
	if err := s.api.Post(ctx, "/api/admin/analytics/revenue", token, dateRange, &points); err != nil {
		s.logger.Error("ADMIN", "Failed to fetch revenue analytics", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("fetch revenue analytics: %w", err)
	}

	s.cache.Set(key, points, cache.DefaultExpiration)
	return points, nil
}

func (s *AnalyticsService) Customers(ctx context.Context, dateRange dto.DateRange) (dto.CustomerAnalytics, error) {
	key := cacheKey("customer", dateRange)
	if x, found := s.cache.Get(key); found {
		return x.(dto.CustomerAnalytics), nil
	}

	token, err := s.tokens.Token(ctx)
	if err != nil {
		return dto.CustomerAnalytics{}, err
	}

	var result dto.CustomerAnalytics
	if err := s.api.Post(ctx, "/api/admin/analytics/customer", token, dateRange, &result); err != nil {
		s.logger.Error("ADMIN", "Failed to fetch customer analytics", map[string]interface{}{"error": err.Error()})
		return dto.CustomerAnalytics{}, fmt.Errorf("fetch customer analytics: %w", err)
	}

	s.cache.Set(key, result, cache.DefaultExpiration)
	return result, nil
}

func (s *AnalyticsService) Products(ctx context.Context, dateRange dto.DateRange) (dto.ProductAnalytics, error) {
	key := cacheKey("product", dateRange)
	if x, found := s.cache.Get(key); found {
		return x.(dto.ProductAnalytics), nil
	}

	token, err := s.tokens.Token(ctx)
	if err != nil {
		return dto.ProductAnalytics{}, err
	}

	var result dto.ProductAnalytics
	if err := s.api.Post(ctx, "/api/admin/analytics/product", token, dateRange, &result); err != nil {
		s.logger.Error("ADMIN", "Failed to fetch product analytics", map[string]interface{}{"error": err.Error()})
		return dto.ProductAnalytics{}, fmt.Errorf("fetch product analytics: %w", err)
	}

	s.cache.Set(key, result, cache.DefaultExpiration)
	return result, nil
}

func (s *AnalyticsService) Geographic(ctx context.Context, dateRange dto.DateRange) (dto.GeographicAnalytics, error) {
	key := cacheKey("geographic", dateRange)
	if x, found := s.cache.Get(key); found {
		return x.(dto.GeographicAnalytics), nil
	}

	token, err := s.tokens.Token(ctx)
	if err != nil {
		return dto.GeographicAnalytics{}, err
	}

	var result dto.GeographicAnalytics
	if err := s.api.Post(ctx, "/api/admin/analytics/geographic", token, dateRange, &result); err != nil {
		s.logger.Error("ADMIN", "Failed to fetch geographic analytics", map[string]interface{}{"error": err.Error()})
		return dto.GeographicAnalytics{}, fmt.Errorf("fetch geographic analytics: %w", err)
	}

	s.cache.Set(key, result, cache.DefaultExpiration)
	return result, nil
}

// Invalidate drops cached dashboards, e.g. after a manual data correction.
func (s *AnalyticsService) Invalidate() {
	s.cache.Flush()
}

func cacheKey(report string, dateRange dto.DateRange) string {
	return report + ":" + dateRange.StartDate + ":" + dateRange.EndDate
}
