package handler

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/pkg/response"
	"Inkstone/internal/service"

	"github.com/gin-gonic/gin"
)

type WritingActionHandler struct {
	actionSvc service.WritingActionService
}

func NewWritingActionHandler(actionSvc service.WritingActionService) *WritingActionHandler {
	return &WritingActionHandler{actionSvc: actionSvc}
}

func (s *WritingActionHandler) Vote(c *gin.Context) {
	writingID := c.Param("writing_id")

	var req dto.VoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	stats, err := s.actionSvc.Vote(c, writingID, req.Direction)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

func (s *WritingActionHandler) AddComment(c *gin.Context) {
	userID := c.GetString("user_id")
	writingID := c.Param("writing_id")

	var req dto.CommentCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.actionSvc.AddComment(c, writingID, userID, req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *WritingActionHandler) TrackView(c *gin.Context) {
	writingID := c.Param("writing_id")
	if err := s.actionSvc.TrackView(c, writingID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
