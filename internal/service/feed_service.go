package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/model"
	"Inkstone/internal/store"
	"context"
	"sort"
)

type FeedService interface {
	TrendingFeed(ctx context.Context, viewerID string) ([]*dto.FeedItemDTO, error)
	FollowingFeed(ctx context.Context, viewerID string) ([]*dto.FeedItemDTO, error)
}

type feedServiceImpl struct {
	store *store.Store
}

func NewFeedService(s *store.Store) FeedService {
	return &feedServiceImpl{store: s}
}

func (s *feedServiceImpl) TrendingFeed(ctx context.Context, viewerID string) ([]*dto.FeedItemDTO, error) {
	snap := s.store.Snapshot()
	return assembleFeed(snap, RankTrending(snap)), nil
}

func (s *feedServiceImpl) FollowingFeed(ctx context.Context, viewerID string) ([]*dto.FeedItemDTO, error) {
	snap := s.store.Snapshot()
	viewer := lookupUser(snap, viewerID)
	if viewer == nil {
		return nil, ErrUserNotFound
	}
	return assembleFeed(snap, RankFollowing(snap, viewer)), nil
}

// RankTrending 热度榜：仅含已发布作品，按 upvotes*10 + views - downvotes*5
// 降序。稳定排序，同分保持集合原有顺序。
func RankTrending(snap store.Snapshot) []*model.Writing {
	ranked := published(snap)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TrendingScore() > ranked[j].TrendingScore()
	})
	return ranked
}

// RankFollowing 关注流：已发布且作者在 viewer 关注集合内，按创建时间降序
func RankFollowing(snap store.Snapshot, viewer *model.User) []*model.Writing {
	var ranked []*model.Writing
	for _, w := range published(snap) {
		if viewer.IsFollowing(w.AuthorID) {
			ranked = append(ranked, w)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CreatedAt.After(ranked[j].CreatedAt)
	})
	return ranked
}

func published(snap store.Snapshot) []*model.Writing {
	out := make([]*model.Writing, 0, len(snap.Writings))
	for _, w := range snap.Writings {
		if w.IsPublished {
			out = append(out, w)
		}
	}
	return out
}

func lookupUser(snap store.Snapshot, id string) *model.User {
	for _, u := range snap.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// assembleFeed 组装信息流条目。作者引用悬空的作品无法渲染，直接跳过。
func assembleFeed(snap store.Snapshot, writings []*model.Writing) []*dto.FeedItemDTO {
	items := make([]*dto.FeedItemDTO, 0, len(writings))
	for _, w := range writings {
		author := lookupUser(snap, w.AuthorID)
		if author == nil {
			continue
		}
		items = append(items, &dto.FeedItemDTO{
			Writing:       toWritingDTO(w),
			Author:        toUserDTO(author),
			TrendingScore: w.TrendingScore(),
		})
	}
	return items
}
