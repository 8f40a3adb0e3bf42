package repository

import (
	"Inkstone/internal/model"
	"Inkstone/internal/pkg/consts"
	"context"
	log "log/slog"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// KV 快照仓库依赖的底层键值存储，生产环境为 Redis
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}

// SnapshotRepo 全量快照仓库：两条命名记录分别保存完整的用户集合与作品集合。
// 任一记录缺失或解析失败时整体回退种子数据，不做部分合并。
type SnapshotRepo struct {
	kv KV
}

func NewSnapshotRepo(kv KV) *SnapshotRepo {
	return &SnapshotRepo{kv: kv}
}

// Load 读取快照；fromSeed 表示返回的是种子数据。不向调用方抛错。
func (s *SnapshotRepo) Load(ctx context.Context) (users []*model.User, writings []*model.Writing, fromSeed bool) {
	users, err := loadRecord[model.User](ctx, s.kv, consts.UsersRecordKey)
	if err != nil {
		log.WarnContext(ctx, "用户记录不可用，回退种子数据", "err", err)
		return SeedUsers(), SeedWritings(), true
	}

	writings, err = loadRecord[model.Writing](ctx, s.kv, consts.WritingsRecordKey)
	if err != nil {
		log.WarnContext(ctx, "作品记录不可用，回退种子数据", "err", err)
		return SeedUsers(), SeedWritings(), true
	}

	return users, writings, false
}

// Save 全量写入两条记录。空集合跳过写入，避免用未加载的状态覆盖已有记录。
func (s *SnapshotRepo) Save(ctx context.Context, users []*model.User, writings []*model.Writing) error {
	if err := saveRecord(ctx, s.kv, consts.UsersRecordKey, users); err != nil {
		return err
	}
	return saveRecord(ctx, s.kv, consts.WritingsRecordKey, writings)
}

func loadRecord[T any](ctx context.Context, kv KV, key string) ([]*T, error) {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "读取记录 %s", key)
	}
	if raw == "" {
		return nil, errors.Errorf("记录 %s 不存在", key)
	}

	var items []*T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, errors.Wrapf(err, "解析记录 %s", key)
	}
	return items, nil
}

func saveRecord[T any](ctx context.Context, kv KV, key string, items []*T) error {
	if len(items) == 0 {
		return nil
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return errors.Wrapf(err, "序列化记录 %s", key)
	}
	if err := kv.Set(ctx, key, string(raw)); err != nil {
		return errors.Wrapf(err, "写入记录 %s", key)
	}
	return nil
}
