package service

import (
	"Inkstone/internal/model"
	"Inkstone/internal/store"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrendingFeedOrderAndScore(t *testing.T) {
	svc := NewFeedService(newSeededStore(t))

	items, err := svc.TrendingFeed(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, items, 2) // writing-3 未发布，不进榜

	// writing-1: 2300*10 + 12500 - 45*5 = 35275
	assert.Equal(t, "writing-1", items[0].Writing.ID)
	assert.Equal(t, 35275, items[0].TrendingScore)
	assert.Equal(t, "Maria Garcia", items[0].Author.Name)

	// writing-2: 1800*10 + 8900 - 12*5 = 26840
	assert.Equal(t, "writing-2", items[1].Writing.ID)
	assert.Equal(t, 26840, items[1].TrendingScore)
}

func TestRankTrendingStableOnEqualScore(t *testing.T) {
	now := time.Now()
	snap := store.Snapshot{
		Writings: []*model.Writing{
			{ID: "w-a", IsPublished: true, CreatedAt: now, Stats: model.Stats{Views: 100}},
			{ID: "w-b", IsPublished: true, CreatedAt: now, Stats: model.Stats{Upvotes: 10}},
			{ID: "w-c", IsPublished: true, CreatedAt: now, Stats: model.Stats{Views: 200}},
		},
	}

	ranked := RankTrending(snap)
	require.Len(t, ranked, 3)
	assert.Equal(t, "w-c", ranked[0].ID)
	// w-a 与 w-b 同为 100 分，保持集合原有顺序
	assert.Equal(t, "w-a", ranked[1].ID)
	assert.Equal(t, "w-b", ranked[2].ID)
}

func TestFollowingFeedFiltersAndSorts(t *testing.T) {
	svc := NewFeedService(newSeededStore(t))
	ctx := context.Background()

	// user-1 关注 user-2、user-3，两篇已发布作品都可见，按创建时间降序
	items, err := svc.FollowingFeed(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "writing-1", items[0].Writing.ID)
	assert.Equal(t, "writing-2", items[1].Writing.ID)

	// user-2 只关注 user-3
	items, err = svc.FollowingFeed(ctx, "user-2")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "writing-2", items[0].Writing.ID)

	// user-3 没有关注任何人
	items, err = svc.FollowingFeed(ctx, "user-3")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFollowingFeedUnknownViewer(t *testing.T) {
	svc := NewFeedService(newSeededStore(t))
	_, err := svc.FollowingFeed(context.Background(), "user-404")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFeedSkipsDanglingAuthor(t *testing.T) {
	s := newSeededStore(t)
	s.ReplaceAll(
		[]*model.User{{ID: "user-1", Name: "Alex", Following: []string{"ghost"}}},
		[]*model.Writing{
			{ID: "w-ok", AuthorID: "user-1", IsPublished: true, Stats: model.Stats{Views: 1}},
			{ID: "w-orphan", AuthorID: "ghost", IsPublished: true, Stats: model.Stats{Views: 999}},
		},
	)

	items, err := NewFeedService(s).TrendingFeed(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "w-ok", items[0].Writing.ID)
}
