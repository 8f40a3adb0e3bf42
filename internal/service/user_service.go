package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/store"
	"context"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]*dto.UserDTO, error)
	GetUser(ctx context.Context, userID string) (*dto.UserDTO, error)
}

type userServiceImpl struct {
	store *store.Store
}

func NewUserService(s *store.Store) UserService {
	return &userServiceImpl{store: s}
}

// ListUsers 账号开通不在本服务范围内，列表仅支撑客户端选择身份
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*dto.UserDTO, error) {
	snap := s.store.Snapshot()
	out := make([]*dto.UserDTO, 0, len(snap.Users))
	for _, u := range snap.Users {
		d := toUserDTO(u)
		out = append(out, &d)
	}
	return out, nil
}

func (s *userServiceImpl) GetUser(ctx context.Context, userID string) (*dto.UserDTO, error) {
	u, ok := s.store.UserByID(userID)
	if !ok {
		return nil, ErrUserNotFound
	}
	d := toUserDTO(u)
	return &d, nil
}
