package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// SetValue 设置键值对
func SetValue(ctx context.Context, key string, value interface{}) error {
	return Rdb.Set(ctx, key, value, 0).Err()
}

// SetWithExpiration 设置键值对并设置过期时间
func SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return Rdb.Set(ctx, key, value, expiration).Err()
}

// GetValue 获取字符串类型的值，键不存在返回空串
func GetValue(ctx context.Context, key string) (string, error) {
	value, err := Rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// DeleteKey 删除一个键
func DeleteKey(ctx context.Context, key string) error {
	return Rdb.Del(ctx, key).Err()
}

// RecordStore 以方法形式暴露键值读写，满足仓库与缓存的端口约束
type RecordStore struct{}

func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

func (s *RecordStore) Get(ctx context.Context, key string) (string, error) {
	return GetValue(ctx, key)
}

func (s *RecordStore) Set(ctx context.Context, key string, value string) error {
	return SetValue(ctx, key, value)
}

func (s *RecordStore) SetWithTTL(ctx context.Context, key string, value string, ttl time.Duration) error {
	return SetWithExpiration(ctx, key, value, ttl)
}
