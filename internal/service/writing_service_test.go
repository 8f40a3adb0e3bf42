package service

import (
	"Inkstone/internal/api/dto"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveWritingCreates(t *testing.T) {
	s := newSeededStore(t)
	svc := NewWritingService(s)

	res, err := svc.SaveWriting(context.Background(), "user-1", &dto.WritingUpsertReq{
		Title:      "New Draft",
		Content:    "first words",
		Template:   "blank",
		FontFamily: "sans",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "user-1", res.AuthorID)
	assert.False(t, res.IsPublished)
	assert.Equal(t, dto.StatsDTO{}, res.Stats)
	assert.Empty(t, res.Comments)
	assert.Equal(t, res.CreatedAt, res.UpdatedAt)
}

func TestSaveWritingUpdatePreservesOwnershipAndCounts(t *testing.T) {
	s := newSeededStore(t)
	svc := NewWritingService(s)

	// user-1 编辑 user-2 的作品：作者、计数与评论不被覆盖
	res, err := svc.SaveWriting(context.Background(), "user-1", &dto.WritingUpsertReq{
		ID:         "writing-1",
		Title:      "The Future of Urban Gardening (rev 2)",
		Content:    "updated body",
		Template:   "article",
		FontFamily: "sans",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-2", res.AuthorID)
	assert.Equal(t, 12500, res.Stats.Views)
	assert.Equal(t, 2300, res.Stats.Upvotes)
	assert.Len(t, res.Comments, 2)
	assert.Equal(t, "The Future of Urban Gardening (rev 2)", res.Title)
}

func TestSaveWritingUnknownID(t *testing.T) {
	svc := NewWritingService(newSeededStore(t))
	_, err := svc.SaveWriting(context.Background(), "user-1", &dto.WritingUpsertReq{
		ID:         "writing-404",
		Title:      "ghost",
		Template:   "blank",
		FontFamily: "sans",
	})
	assert.ErrorIs(t, err, ErrWritingNotFound)
}

func TestSaveWritingUnknownAuthor(t *testing.T) {
	svc := NewWritingService(newSeededStore(t))
	_, err := svc.SaveWriting(context.Background(), "user-404", &dto.WritingUpsertReq{
		Title:      "x",
		Template:   "blank",
		FontFamily: "sans",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetWriting(t *testing.T) {
	svc := NewWritingService(newSeededStore(t))

	res, err := svc.GetWriting(context.Background(), "writing-2")
	require.NoError(t, err)
	assert.Equal(t, "A Short Story About Time", res.Title)
	assert.Equal(t, "serif", res.FontFamily)

	_, err = svc.GetWriting(context.Background(), "writing-404")
	assert.ErrorIs(t, err, ErrWritingNotFound)
}

func TestListByAuthorIncludesDrafts(t *testing.T) {
	svc := NewWritingService(newSeededStore(t))

	// user-1 仅有一篇未发布草稿，创作台仍可见
	list, err := svc.ListByAuthor(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "writing-3", list[0].ID)
	assert.False(t, list[0].IsPublished)
}
