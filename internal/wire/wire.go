package wire

import (
	"Inkstone/internal/api"
	"Inkstone/internal/api/config"
	"Inkstone/internal/api/handler"
	"Inkstone/internal/job"
	"Inkstone/internal/pkg/cron"
	"Inkstone/internal/pkg/llm"
	"Inkstone/internal/pkg/redis"
	"Inkstone/internal/repository"
	"Inkstone/internal/service"
	"Inkstone/internal/store"
	"context"

	"github.com/gin-gonic/gin"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	Store   *store.Store
	CronMgr *cron.Manager
}

func BuildApplication(ctx context.Context, cfg *config.Config) (*ApplicationContainer, error) {
	records := redis.NewRecordStore()
	snapshotRepo := repository.NewSnapshotRepo(records)

	entityStore := store.New(snapshotRepo)
	entityStore.Bootstrap(ctx)

	corrector, err := llm.NewCorrector(cfg.Grammar)
	if err != nil {
		return nil, err
	}

	userService := service.NewUserService(entityStore)
	feedService := service.NewFeedService(entityStore)
	writingService := service.NewWritingService(entityStore)
	actionService := service.NewWritingActionService(entityStore)
	userFollowService := service.NewUserFollowService(entityStore)
	editorService := service.NewEditorService(corrector)
	analyticsService := service.NewAnalyticsService(records, repository.SeedAnalytics)

	handlers := &api.HandlersGroup{
		UserHandler:          handler.NewUserHandler(userService),
		FeedHandler:          handler.NewFeedHandler(feedService),
		WritingHandler:       handler.NewWritingHandler(writingService),
		WritingActionHandler: handler.NewWritingActionHandler(actionService),
		UserFollowHandler:    handler.NewUserFollowHandler(userFollowService),
		EditorHandler:        handler.NewEditorHandler(editorService),
		AnalyticsHandler:     handler.NewAnalyticsHandler(analyticsService),
	}

	router := api.SetupRouter(handlers, entityStore)

	cronMgr := cron.NewCronManager(job.NewAnalyticsRefreshJob(analyticsService))

	return &ApplicationContainer{
		Router:  router,
		Store:   entityStore,
		CronMgr: cronMgr,
	}, nil
}
