package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/pkg/splice"
	"context"
	"errors"
	log "log/slog"
	"strings"
)

const (
	SuggestionStatusOK            = "ok"
	SuggestionStatusServiceFailed = "service_failed"
)

// GrammarCorrector 外部文本纠错服务边界：输入片段，返回纠正后的片段或错误。
// 本服务不做自动重试，失败只向调用方呈现一次。
type GrammarCorrector interface {
	Correct(ctx context.Context, fragment string) (string, error)
}

type EditorService interface {
	InsertMarkdown(ctx context.Context, req *dto.MarkdownInsertReq) (*dto.MarkdownInsertDTO, error)
	CheckGrammar(ctx context.Context, req *dto.GrammarCheckReq) (*dto.GrammarCheckDTO, error)
	ApplySuggestion(ctx context.Context, req *dto.GrammarApplyReq) (*dto.GrammarApplyDTO, error)
}

type editorServiceImpl struct {
	corrector GrammarCorrector
}

func NewEditorService(corrector GrammarCorrector) EditorService {
	return &editorServiceImpl{corrector: corrector}
}

// InsertMarkdown 在草稿选区处插入链接/图片结构，返回指向 url 占位符的新选区
func (s *editorServiceImpl) InsertMarkdown(ctx context.Context, req *dto.MarkdownInsertReq) (*dto.MarkdownInsertDTO, error) {
	sel := splice.Selection{Start: req.SelectionStart, End: req.SelectionEnd}
	content, cursor, err := splice.InsertMarkdown(req.Content, sel, splice.MarkdownKind(req.Kind))
	if err != nil {
		return nil, ErrParamInvalid
	}
	return &dto.MarkdownInsertDTO{
		Content:        content,
		SelectionStart: cursor.Start,
		SelectionEnd:   cursor.End,
	}, nil
}

// CheckGrammar 取选区覆盖的片段送外部纠错服务。服务失败不是致命错误，
// 以 service_failed 状态作为数据返回，编辑会话不受影响。
func (s *editorServiceImpl) CheckGrammar(ctx context.Context, req *dto.GrammarCheckReq) (*dto.GrammarCheckDTO, error) {
	sel := splice.Selection{Start: req.SelectionStart, End: req.SelectionEnd}
	if err := sel.Validate(req.Content); err != nil {
		return nil, ErrParamInvalid
	}
	if sel.IsEmpty() || strings.TrimSpace(sel.Text(req.Content)) == "" {
		return nil, ErrNoSelection
	}

	suggestion, err := s.corrector.Correct(ctx, sel.Text(req.Content))
	if err != nil {
		log.WarnContext(ctx, "语法检查服务调用失败", "err", err)
		return &dto.GrammarCheckDTO{
			Status:  SuggestionStatusServiceFailed,
			Message: ErrGrammarService.Error(),
		}, nil
	}

	return &dto.GrammarCheckDTO{Status: SuggestionStatusOK, Suggestion: suggestion}, nil
}

// ApplySuggestion 套用建议前重新校验发起检查时捕获的选区偏移：
// 请求在途期间草稿被改短会使偏移失效，此时拒绝套用而不是写坏内容。
func (s *editorServiceImpl) ApplySuggestion(ctx context.Context, req *dto.GrammarApplyReq) (*dto.GrammarApplyDTO, error) {
	sel := splice.Selection{Start: req.SelectionStart, End: req.SelectionEnd}
	if sel.IsEmpty() {
		return nil, ErrNoSelection
	}

	content, err := splice.Replace(req.Content, sel, req.Suggestion)
	if err != nil {
		if errors.Is(err, splice.ErrOutOfBounds) {
			return nil, ErrStaleSelection
		}
		return nil, ErrParamInvalid
	}
	return &dto.GrammarApplyDTO{Content: content}, nil
}
