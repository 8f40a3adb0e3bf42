package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/store"
	"context"
)

type UserFollowService interface {
	ToggleFollow(ctx context.Context, userID, authorID string) (*dto.FollowingDTO, error)
	Following(ctx context.Context, userID string) (*dto.FollowingDTO, error)
}

type userFollowServiceImpl struct {
	store *store.Store
}

func NewUserFollowService(s *store.Store) UserFollowService {
	return &userFollowServiceImpl{store: s}
}

// ToggleFollow 关注/取关切换，集合语义：连续两次调用恢复原集合。
// 不允许关注自己。
func (s *userFollowServiceImpl) ToggleFollow(ctx context.Context, userID, authorID string) (*dto.FollowingDTO, error) {
	if userID == authorID {
		return nil, ErrFollowSelf
	}

	user, ok := s.store.UserByID(userID)
	if !ok {
		return nil, ErrUserNotFound
	}
	if _, ok = s.store.UserByID(authorID); !ok {
		return nil, ErrUserNotFound
	}

	following := make([]string, 0, len(user.Following)+1)
	removed := false
	for _, id := range user.Following {
		if id == authorID {
			removed = true
			continue
		}
		following = append(following, id)
	}
	if !removed {
		following = append(following, authorID)
	}

	if !s.store.SetFollowing(ctx, userID, following) {
		return nil, ErrUserNotFound
	}

	return &dto.FollowingDTO{
		UserID:      userID,
		Following:   following,
		IsFollowing: !removed,
	}, nil
}

func (s *userFollowServiceImpl) Following(ctx context.Context, userID string) (*dto.FollowingDTO, error) {
	user, ok := s.store.UserByID(userID)
	if !ok {
		return nil, ErrUserNotFound
	}
	return &dto.FollowingDTO{
		UserID:    userID,
		Following: user.Following,
	}, nil
}
