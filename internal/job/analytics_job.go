package job

import (
	"Inkstone/internal/pkg/logger"
	"Inkstone/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// AnalyticsRefreshJob 定时回源重建聚合数据缓存
type AnalyticsRefreshJob struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsRefreshJob(analyticsSvc service.AnalyticsService) *AnalyticsRefreshJob {
	return &AnalyticsRefreshJob{analyticsSvc: analyticsSvc}
}

func (s *AnalyticsRefreshJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	if err := s.analyticsSvc.Refresh(ctx); err != nil {
		log.ErrorContext(ctx, "refresh analytics aggregate error", "err", err)
		return
	}
	log.InfoContext(ctx, "refresh analytics aggregate success")
}
