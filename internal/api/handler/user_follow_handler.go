package handler

import (
	"Inkstone/internal/pkg/response"
	"Inkstone/internal/service"

	"github.com/gin-gonic/gin"
)

type UserFollowHandler struct {
	userFollowSvc service.UserFollowService
}

func NewUserFollowHandler(userFollowSvc service.UserFollowService) *UserFollowHandler {
	return &UserFollowHandler{userFollowSvc: userFollowSvc}
}

// ToggleFollow 关注/取关切换
func (s *UserFollowHandler) ToggleFollow(c *gin.Context) {
	userID := c.GetString("user_id")
	authorID := c.Param("author_id")
	if authorID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	following, err := s.userFollowSvc.ToggleFollow(c, userID, authorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, following)
}

func (s *UserFollowHandler) GetFollowing(c *gin.Context) {
	userID := c.GetString("user_id")
	following, err := s.userFollowSvc.Following(c, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, following)
}
