package service

import (
	"Inkstone/internal/model"
	"Inkstone/internal/repository"
	"Inkstone/internal/store"
	"context"
	"testing"
)

// seedGateway 测试用持久层：装载种子数据，写入只计数不落盘
type seedGateway struct {
	users     []*model.User
	writings  []*model.Writing
	saveCalls int
}

func (g *seedGateway) Load(ctx context.Context) ([]*model.User, []*model.Writing, bool) {
	return g.users, g.writings, false
}

func (g *seedGateway) Save(ctx context.Context, users []*model.User, writings []*model.Writing) error {
	g.saveCalls++
	return nil
}

func newSeededStore(t *testing.T) *store.Store {
	t.Helper()
	gw := &seedGateway{users: repository.SeedUsers(), writings: repository.SeedWritings()}
	s := store.New(gw)
	s.Bootstrap(context.Background())
	return s
}
