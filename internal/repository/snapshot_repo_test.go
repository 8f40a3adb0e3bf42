package repository

import (
	"Inkstone/internal/model"
	"Inkstone/internal/pkg/consts"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryKV struct {
	data   map[string]string
	getErr error
	setErr error
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: map[string]string{}}
}

func (s *memoryKV) Get(ctx context.Context, key string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	return s.data[key], nil
}

func (s *memoryKV) Set(ctx context.Context, key string, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.data[key] = value
	return nil
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	kv := newMemoryKV()
	repo := NewSnapshotRepo(kv)
	ctx := context.Background()

	users := SeedUsers()
	writings := SeedWritings()
	users[0].Name = "Renamed"
	writings[1].Stats.Upvotes++

	require.NoError(t, repo.Save(ctx, users, writings))

	gotUsers, gotWritings, fromSeed := repo.Load(ctx)
	assert.False(t, fromSeed)
	assert.Equal(t, users, gotUsers)
	assert.Equal(t, writings, gotWritings)
}

func TestLoadEmptyStorageFallsBackToSeed(t *testing.T) {
	repo := NewSnapshotRepo(newMemoryKV())

	users, writings, fromSeed := repo.Load(context.Background())
	assert.True(t, fromSeed)
	assert.Equal(t, SeedUsers(), users)
	assert.Equal(t, SeedWritings(), writings)
}

func TestLoadCorruptWritingsFallsBackEntirely(t *testing.T) {
	kv := newMemoryKV()
	repo := NewSnapshotRepo(kv)
	ctx := context.Background()

	// 用户记录有效但手动修改过，作品记录损坏
	users := SeedUsers()
	users[0].Name = "Changed"
	require.NoError(t, repo.Save(ctx, users, SeedWritings()))
	kv.data[consts.WritingsRecordKey] = "{not json"

	gotUsers, gotWritings, fromSeed := repo.Load(ctx)
	assert.True(t, fromSeed)
	// 整体回退：有效的用户记录也不保留
	assert.Equal(t, SeedUsers(), gotUsers)
	assert.Equal(t, SeedWritings(), gotWritings)
}

func TestLoadKVErrorFallsBackToSeed(t *testing.T) {
	kv := newMemoryKV()
	kv.getErr = errors.New("connection refused")
	repo := NewSnapshotRepo(kv)

	users, writings, fromSeed := repo.Load(context.Background())
	assert.True(t, fromSeed)
	assert.NotEmpty(t, users)
	assert.NotEmpty(t, writings)
}

func TestSaveEmptyCollectionIsNoOp(t *testing.T) {
	kv := newMemoryKV()
	repo := NewSnapshotRepo(kv)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, SeedUsers(), SeedWritings()))
	before := kv.data[consts.UsersRecordKey]

	// 未装载状态下的空集合不能覆盖已有记录
	require.NoError(t, repo.Save(ctx, []*model.User{}, []*model.Writing{}))
	assert.Equal(t, before, kv.data[consts.UsersRecordKey])
	assert.NotEmpty(t, kv.data[consts.WritingsRecordKey])
}

func TestSaveErrorIsReturned(t *testing.T) {
	kv := newMemoryKV()
	kv.setErr = errors.New("quota exceeded")
	repo := NewSnapshotRepo(kv)

	err := repo.Save(context.Background(), SeedUsers(), SeedWritings())
	assert.Error(t, err)
}

func TestSeedSatisfiesInvariants(t *testing.T) {
	users := SeedUsers()
	writings := SeedWritings()

	userIDs := map[string]bool{}
	for _, u := range users {
		assert.False(t, userIDs[u.ID], "用户 ID 重复: %s", u.ID)
		userIDs[u.ID] = true
		for _, f := range u.Following {
			assert.NotEqual(t, u.ID, f, "关注集合不能包含自身")
		}
	}

	writingIDs := map[string]bool{}
	for _, w := range writings {
		assert.False(t, writingIDs[w.ID], "作品 ID 重复: %s", w.ID)
		writingIDs[w.ID] = true
		assert.True(t, userIDs[w.AuthorID], "作者引用无效: %s", w.AuthorID)
		assert.False(t, w.UpdatedAt.Before(w.CreatedAt))
		assert.GreaterOrEqual(t, w.Stats.Views, 0)
		assert.GreaterOrEqual(t, w.Stats.Upvotes, 0)
		assert.GreaterOrEqual(t, w.Stats.Downvotes, 0)
	}
}
