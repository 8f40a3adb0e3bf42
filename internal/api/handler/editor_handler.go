package handler

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/pkg/response"
	"Inkstone/internal/service"

	"github.com/gin-gonic/gin"
)

type EditorHandler struct {
	editorSvc service.EditorService
}

func NewEditorHandler(editorSvc service.EditorService) *EditorHandler {
	return &EditorHandler{editorSvc: editorSvc}
}

func (s *EditorHandler) InsertMarkdown(c *gin.Context) {
	var req dto.MarkdownInsertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.editorSvc.InsertMarkdown(c, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *EditorHandler) CheckGrammar(c *gin.Context) {
	var req dto.GrammarCheckReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.editorSvc.CheckGrammar(c, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *EditorHandler) ApplySuggestion(c *gin.Context) {
	var req dto.GrammarApplyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.editorSvc.ApplySuggestion(c, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
