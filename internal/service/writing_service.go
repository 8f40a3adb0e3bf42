package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/model"
	"Inkstone/internal/store"
	"context"
)

type WritingService interface {
	SaveWriting(ctx context.Context, authorID string, req *dto.WritingUpsertReq) (*dto.WritingDTO, error)
	GetWriting(ctx context.Context, writingID string) (*dto.WritingDTO, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*dto.WritingDTO, error)
}

type writingServiceImpl struct {
	store *store.Store
}

func NewWritingService(s *store.Store) WritingService {
	return &writingServiceImpl{store: s}
}

// SaveWriting 提交编辑会话。新建时作者为当前用户；更新时保留原作者与
// 原有计数、评论，仅覆盖可编辑字段。
func (s *writingServiceImpl) SaveWriting(ctx context.Context, authorID string, req *dto.WritingUpsertReq) (*dto.WritingDTO, error) {
	if _, ok := s.store.UserByID(authorID); !ok {
		return nil, ErrUserNotFound
	}

	writing := &model.Writing{
		ID:              req.ID,
		AuthorID:        authorID,
		Title:           req.Title,
		Content:         req.Content,
		IsPublished:     req.IsPublished,
		Template:        req.Template,
		FontFamily:      req.FontFamily,
		BackgroundColor: req.BackgroundColor,
	}

	if req.ID != "" {
		existing, ok := s.store.WritingByID(req.ID)
		if !ok {
			return nil, ErrWritingNotFound
		}
		writing.AuthorID = existing.AuthorID
		writing.CreatedAt = existing.CreatedAt
		writing.Stats = existing.Stats
		writing.Comments = existing.Comments
	}

	saved := s.store.UpsertWriting(ctx, writing)
	d := toWritingDTO(saved)
	return &d, nil
}

func (s *writingServiceImpl) GetWriting(ctx context.Context, writingID string) (*dto.WritingDTO, error) {
	w, ok := s.store.WritingByID(writingID)
	if !ok {
		return nil, ErrWritingNotFound
	}
	d := toWritingDTO(w)
	return &d, nil
}

// ListByAuthor 创作台列表，含未发布草稿
func (s *writingServiceImpl) ListByAuthor(ctx context.Context, authorID string) ([]*dto.WritingDTO, error) {
	if _, ok := s.store.UserByID(authorID); !ok {
		return nil, ErrUserNotFound
	}

	snap := s.store.Snapshot()
	out := make([]*dto.WritingDTO, 0)
	for _, w := range snap.Writings {
		if w.AuthorID == authorID {
			d := toWritingDTO(w)
			out = append(out, &d)
		}
	}
	return out, nil
}
