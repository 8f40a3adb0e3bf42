package api

import (
	"Inkstone/internal/api/handler"
)

type HandlersGroup struct {
	UserHandler          *handler.UserHandler
	FeedHandler          *handler.FeedHandler
	WritingHandler       *handler.WritingHandler
	WritingActionHandler *handler.WritingActionHandler
	UserFollowHandler    *handler.UserFollowHandler
	EditorHandler        *handler.EditorHandler
	AnalyticsHandler     *handler.AnalyticsHandler
}
