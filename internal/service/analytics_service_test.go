package service

import (
	"Inkstone/internal/model"
	"Inkstone/internal/pkg/consts"
	"Inkstone/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryCache 测试用缓存替身
type memoryCache struct {
	data   map[string]string
	getErr error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string]string{}}
}

func (c *memoryCache) Get(ctx context.Context, key string) (string, error) {
	if c.getErr != nil {
		return "", c.getErr
	}
	return c.data[key], nil
}

func (c *memoryCache) SetWithTTL(ctx context.Context, key string, value string, ttl time.Duration) error {
	c.data[key] = value
	return nil
}

func TestDashboardMissFillsCache(t *testing.T) {
	cache := newMemoryCache()
	sourceCalls := 0
	svc := NewAnalyticsService(cache, func() *model.Analytics {
		sourceCalls++
		return repository.SeedAnalytics()
	})
	ctx := context.Background()

	res, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 450000, res.TotalViews)
	assert.Equal(t, 15200, res.TotalUpvotes)
	assert.Equal(t, 2100, res.Followers)
	assert.InDelta(t, 345.67, res.EstimatedEarnings, 0.001)
	assert.Equal(t, 1, sourceCalls)
	assert.NotEmpty(t, cache.data[consts.AnalyticsCacheKey])

	// 第二次命中缓存，不再回源
	_, err = svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sourceCalls)
}

func TestDashboardCorruptCacheFallsBackToSource(t *testing.T) {
	cache := newMemoryCache()
	cache.data[consts.AnalyticsCacheKey] = "{not json"
	svc := NewAnalyticsService(cache, repository.SeedAnalytics)

	res, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 450000, res.TotalViews)
}

func TestDashboardCacheErrorFallsBackToSource(t *testing.T) {
	cache := newMemoryCache()
	cache.getErr = assert.AnError
	svc := NewAnalyticsService(cache, repository.SeedAnalytics)

	res, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2100, res.Followers)
}

func TestRefreshRebuildsCache(t *testing.T) {
	cache := newMemoryCache()
	svc := NewAnalyticsService(cache, repository.SeedAnalytics)

	require.NoError(t, svc.Refresh(context.Background()))

	var cached model.Analytics
	require.NoError(t, json.Unmarshal([]byte(cache.data[consts.AnalyticsCacheKey]), &cached))
	assert.Equal(t, 450000, cached.TotalViews)
	assert.Len(t, cached.PerformanceHistory, 5)
}

func TestChartSeriesPercent(t *testing.T) {
	points := ChartSeries(repository.SeedAnalytics().PerformanceHistory)
	require.Len(t, points, 5)

	// Jul 为最大值 120000，占比 100
	assert.Equal(t, "Jul", points[2].Month)
	assert.Equal(t, 100, points[2].Percent)
	// May: 50000*100/120000 = 41
	assert.Equal(t, 41, points[0].Percent)
	// Sep: 110000*100/120000 = 91
	assert.Equal(t, 91, points[4].Percent)
}

func TestChartSeriesEmptyHistory(t *testing.T) {
	assert.Empty(t, ChartSeries(nil))
	points := ChartSeries([]model.MonthlyViews{{Month: "Jan", Views: 0}})
	require.Len(t, points, 1)
	assert.Equal(t, 0, points[0].Percent)
}
