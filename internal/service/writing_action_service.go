package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/model"
	"Inkstone/internal/store"
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type WritingActionService interface {
	Vote(ctx context.Context, writingID string, direction string) (*dto.StatsDTO, error)
	AddComment(ctx context.Context, writingID, authorID, content string) (*dto.CommentDTO, error)
	TrackView(ctx context.Context, writingID string) error
}

type writingActionServiceImpl struct {
	store *store.Store
}

func NewWritingActionService(s *store.Store) WritingActionService {
	return &writingActionServiceImpl{store: s}
}

// Vote 对应方向计数 +1。本版本不记录投票人，同一用户可重复投票。
func (s *writingActionServiceImpl) Vote(ctx context.Context, writingID string, direction string) (*dto.StatsDTO, error) {
	dir, ok := store.ValidDirection(direction)
	if !ok {
		return nil, ErrParamInvalid
	}
	if !s.store.IncrementVote(ctx, writingID, dir) {
		return nil, ErrWritingNotFound
	}

	w, _ := s.store.WritingByID(writingID)
	return &dto.StatsDTO{Views: w.Stats.Views, Upvotes: w.Stats.Upvotes, Downvotes: w.Stats.Downvotes}, nil
}

// AddComment 去除首尾空白后为空则拒绝；评论创建后不可变更
func (s *writingActionServiceImpl) AddComment(ctx context.Context, writingID, authorID, content string) (*dto.CommentDTO, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrCommentEmpty
	}
	if _, ok := s.store.UserByID(authorID); !ok {
		return nil, ErrUserNotFound
	}

	comment := model.Comment{
		ID:        "comment-" + uuid.NewString(),
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if !s.store.AppendComment(ctx, writingID, comment) {
		return nil, ErrWritingNotFound
	}

	d := toCommentDTO(&comment)
	return &d, nil
}

func (s *writingActionServiceImpl) TrackView(ctx context.Context, writingID string) error {
	if !s.store.IncrementView(ctx, writingID) {
		return ErrWritingNotFound
	}
	return nil
}
