package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/model"
	"Inkstone/internal/pkg/consts"
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
)

const analyticsCacheTTL = time.Hour

// AnalyticsCache 聚合数据的缓存端口，生产环境为 Redis
type AnalyticsCache interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key string, value string, ttl time.Duration) error
}

// AnalyticsSource 聚合数据来源，与单篇作品计数相互独立
type AnalyticsSource func() *model.Analytics

type AnalyticsService interface {
	Dashboard(ctx context.Context) (*dto.AnalyticsDTO, error)
	Refresh(ctx context.Context) error
}

type analyticsServiceImpl struct {
	cache  AnalyticsCache
	source AnalyticsSource
}

func NewAnalyticsService(cache AnalyticsCache, source AnalyticsSource) AnalyticsService {
	return &analyticsServiceImpl{cache: cache, source: source}
}

// Dashboard 优先读缓存，未命中回源并回填
func (s *analyticsServiceImpl) Dashboard(ctx context.Context) (*dto.AnalyticsDTO, error) {
	aggregate := s.cachedAggregate(ctx)
	if aggregate == nil {
		aggregate = s.source()
		s.fillCache(ctx, aggregate)
	}

	return &dto.AnalyticsDTO{
		TotalViews:        aggregate.TotalViews,
		TotalUpvotes:      aggregate.TotalUpvotes,
		Followers:         aggregate.Followers,
		EstimatedEarnings: aggregate.EstimatedEarnings,
		Chart:             ChartSeries(aggregate.PerformanceHistory),
	}, nil
}

// Refresh 定时任务入口：回源并重建缓存
func (s *analyticsServiceImpl) Refresh(ctx context.Context) error {
	s.fillCache(ctx, s.source())
	return nil
}

func (s *analyticsServiceImpl) cachedAggregate(ctx context.Context) *model.Analytics {
	raw, err := s.cache.Get(ctx, consts.AnalyticsCacheKey)
	if err != nil || raw == "" {
		return nil
	}
	var aggregate model.Analytics
	if err := json.Unmarshal([]byte(raw), &aggregate); err != nil {
		log.WarnContext(ctx, "聚合缓存解析失败", "err", err)
		return nil
	}
	return &aggregate
}

func (s *analyticsServiceImpl) fillCache(ctx context.Context, aggregate *model.Analytics) {
	raw, err := json.Marshal(aggregate)
	if err != nil {
		log.WarnContext(ctx, "聚合数据序列化失败", "err", err)
		return
	}
	if err := s.cache.SetWithTTL(ctx, consts.AnalyticsCacheKey, string(raw), analyticsCacheTTL); err != nil {
		log.WarnContext(ctx, "聚合缓存写入失败", "err", err)
	}
}

// ChartSeries 月度浏览序列，按序列最大值归一为百分比
func ChartSeries(history []model.MonthlyViews) []dto.ChartPointDTO {
	max := 0
	for _, p := range history {
		if p.Views > max {
			max = p.Views
		}
	}

	points := make([]dto.ChartPointDTO, 0, len(history))
	for _, p := range history {
		percent := 0
		if max > 0 {
			percent = p.Views * 100 / max
		}
		points = append(points, dto.ChartPointDTO{Month: p.Month, Views: p.Views, Percent: percent})
	}
	return points
}
