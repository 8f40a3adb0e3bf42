package handler

import (
	"Inkstone/internal/pkg/response"
	"Inkstone/internal/service"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedSvc service.FeedService
}

func NewFeedHandler(feedSvc service.FeedService) *FeedHandler {
	return &FeedHandler{feedSvc: feedSvc}
}

func (s *FeedHandler) Trending(c *gin.Context) {
	viewerID := c.GetString("user_id")
	items, err := s.feedSvc.TrendingFeed(c, viewerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

func (s *FeedHandler) Following(c *gin.Context) {
	viewerID := c.GetString("user_id")
	items, err := s.feedSvc.FollowingFeed(c, viewerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}
