package store

import (
	"Inkstone/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryGateway struct {
	users     []*model.User
	writings  []*model.Writing
	fromSeed  bool
	saveCalls int
	saveErr   error
}

func (s *memoryGateway) Load(ctx context.Context) ([]*model.User, []*model.Writing, bool) {
	return s.users, s.writings, s.fromSeed
}

func (s *memoryGateway) Save(ctx context.Context, users []*model.User, writings []*model.Writing) error {
	s.saveCalls++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.users = users
	s.writings = writings
	return nil
}

func fixtureUsers() []*model.User {
	return []*model.User{
		{ID: "user-1", Name: "Alex", Following: []string{"user-2"}},
		{ID: "user-2", Name: "Maria", Following: []string{}},
	}
}

func fixtureWritings() []*model.Writing {
	created := time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)
	return []*model.Writing{
		{
			ID:          "writing-1",
			AuthorID:    "user-2",
			Title:       "First",
			IsPublished: true,
			CreatedAt:   created,
			UpdatedAt:   created,
			Stats:       model.Stats{Views: 10, Upvotes: 2, Downvotes: 1},
			Comments:    []model.Comment{},
		},
	}
}

func newTestStore(t *testing.T) (*Store, *memoryGateway) {
	t.Helper()
	gw := &memoryGateway{users: fixtureUsers(), writings: fixtureWritings()}
	s := New(gw)
	s.Bootstrap(context.Background())
	return s, gw
}

func TestUpsertWritingCreatesFresh(t *testing.T) {
	s, gw := newTestStore(t)
	before := time.Now()

	saved := s.UpsertWriting(context.Background(), &model.Writing{
		AuthorID: "user-1",
		Title:    "Draft",
		Template: model.TemplateBlank,
	})

	require.NotEmpty(t, saved.ID)
	assert.Equal(t, saved.CreatedAt, saved.UpdatedAt)
	assert.False(t, saved.CreatedAt.Before(before))
	assert.Equal(t, model.Stats{}, saved.Stats)
	assert.Empty(t, saved.Comments)
	assert.Equal(t, 1, gw.saveCalls)

	got, ok := s.WritingByID(saved.ID)
	require.True(t, ok)
	assert.Equal(t, "Draft", got.Title)
}

func TestUpsertWritingReplacesAndRefreshesUpdatedAt(t *testing.T) {
	s, _ := newTestStore(t)

	existing, ok := s.WritingByID("writing-1")
	require.True(t, ok)

	update := *existing
	update.Title = "Renamed"
	update.UpdatedAt = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC) // 调用方提供的值被忽略

	saved := s.UpsertWriting(context.Background(), &update)
	assert.Equal(t, "Renamed", saved.Title)
	assert.True(t, saved.UpdatedAt.After(existing.UpdatedAt))
	assert.False(t, saved.UpdatedAt.Before(saved.CreatedAt))
}

func TestIncrementVote(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.True(t, s.IncrementVote(ctx, "writing-1", VoteUp))
	w, _ := s.WritingByID("writing-1")
	assert.Equal(t, 3, w.Stats.Upvotes)
	assert.Equal(t, 1, w.Stats.Downvotes)

	require.True(t, s.IncrementVote(ctx, "writing-1", VoteDown))
	w, _ = s.WritingByID("writing-1")
	assert.Equal(t, 2, w.Stats.Downvotes)
}

func TestIncrementVoteMissingWritingIsNoOp(t *testing.T) {
	s, gw := newTestStore(t)
	assert.False(t, s.IncrementVote(context.Background(), "writing-404", VoteUp))
	assert.Equal(t, 0, gw.saveCalls)
}

func TestIncrementView(t *testing.T) {
	s, _ := newTestStore(t)
	require.True(t, s.IncrementView(context.Background(), "writing-1"))
	w, _ := s.WritingByID("writing-1")
	assert.Equal(t, 11, w.Stats.Views)
}

func TestAppendCommentKeepsInsertionOrder(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	first := model.Comment{ID: "c1", AuthorID: "user-1", Content: "one", CreatedAt: time.Now()}
	second := model.Comment{ID: "c2", AuthorID: "user-2", Content: "two", CreatedAt: time.Now()}
	require.True(t, s.AppendComment(ctx, "writing-1", first))
	require.True(t, s.AppendComment(ctx, "writing-1", second))

	w, _ := s.WritingByID("writing-1")
	require.Len(t, w.Comments, 2)
	assert.Equal(t, "c1", w.Comments[0].ID)
	assert.Equal(t, "c2", w.Comments[1].ID)
}

func TestSetFollowing(t *testing.T) {
	s, _ := newTestStore(t)
	require.True(t, s.SetFollowing(context.Background(), "user-2", []string{"user-1"}))
	u, _ := s.UserByID("user-2")
	assert.Equal(t, []string{"user-1"}, u.Following)
}

func TestSetFollowingMissingUser(t *testing.T) {
	s, gw := newTestStore(t)
	assert.False(t, s.SetFollowing(context.Background(), "user-404", nil))
	assert.Equal(t, 0, gw.saveCalls)
}

func TestSnapshotIsIsolatedCopy(t *testing.T) {
	s, _ := newTestStore(t)

	snap := s.Snapshot()
	snap.Writings[0].Title = "mutated"
	snap.Writings[0].Comments = append(snap.Writings[0].Comments, model.Comment{ID: "evil"})
	snap.Users[0].Following[0] = "user-999"

	w, _ := s.WritingByID("writing-1")
	assert.Equal(t, "First", w.Title)
	assert.Empty(t, w.Comments)
	u, _ := s.UserByID("user-1")
	assert.Equal(t, []string{"user-2"}, u.Following)
}

func TestMutationSurvivesFailedSave(t *testing.T) {
	s, gw := newTestStore(t)
	gw.saveErr = assert.AnError

	require.True(t, s.IncrementVote(context.Background(), "writing-1", VoteUp))
	w, _ := s.WritingByID("writing-1")
	// 持久化失败不回滚内存状态
	assert.Equal(t, 3, w.Stats.Upvotes)
}

func TestValidDirection(t *testing.T) {
	dir, ok := ValidDirection("UP")
	assert.True(t, ok)
	assert.Equal(t, VoteUp, dir)

	_, ok = ValidDirection("sideways")
	assert.False(t, ok)
}
