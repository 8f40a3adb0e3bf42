package handler

import (
	"Inkstone/internal/pkg/response"
	"Inkstone/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (s *UserHandler) ListUsers(c *gin.Context) {
	users, err := s.userSvc.ListUsers(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, users)
}

func (s *UserHandler) GetUser(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	user, err := s.userSvc.GetUser(c, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}
