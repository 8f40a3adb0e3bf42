package handler

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/pkg/response"
	"Inkstone/internal/service"

	"github.com/gin-gonic/gin"
)

type WritingHandler struct {
	writingSvc service.WritingService
}

func NewWritingHandler(writingSvc service.WritingService) *WritingHandler {
	return &WritingHandler{writingSvc: writingSvc}
}

// SaveWriting 提交编辑会话，无 ID 新建，有 ID 覆盖
func (s *WritingHandler) SaveWriting(c *gin.Context) {
	userID := c.GetString("user_id")

	var req dto.WritingUpsertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	writing, err := s.writingSvc.SaveWriting(c, userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, writing)
}

func (s *WritingHandler) GetWriting(c *gin.Context) {
	writingID := c.Param("writing_id")
	if writingID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	writing, err := s.writingSvc.GetWriting(c, writingID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, writing)
}

// ListMine 创作台列表，含未发布草稿
func (s *WritingHandler) ListMine(c *gin.Context) {
	userID := c.GetString("user_id")
	writings, err := s.writingSvc.ListByAuthor(c, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, writings)
}
