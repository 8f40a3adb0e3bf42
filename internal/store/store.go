package store

import (
	"Inkstone/internal/model"
	"context"
	log "log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

// Gateway 快照持久化边界。Load 永不失败（内部回退种子数据），
// Save 尽力而为，失败不影响内存状态。
type Gateway interface {
	Load(ctx context.Context) (users []*model.User, writings []*model.Writing, fromSeed bool)
	Save(ctx context.Context, users []*model.User, writings []*model.Writing) error
}

// Store 用户与作品集合的唯一写入方。写锁保证同一时刻只有一个
// 变更在执行，每次提交后全量透写持久层。
type Store struct {
	mu       sync.RWMutex
	users    []*model.User
	writings []*model.Writing
	gateway  Gateway
}

func New(gateway Gateway) *Store {
	return &Store{gateway: gateway}
}

// Bootstrap 从持久层装载初始状态
func (s *Store) Bootstrap(ctx context.Context) {
	users, writings, fromSeed := s.gateway.Load(ctx)
	s.ReplaceAll(users, writings)
	if fromSeed {
		log.InfoContext(ctx, "使用种子数据初始化", "users", len(users), "writings", len(writings))
	}
}

// ReplaceAll 整体替换内存集合，仅用于引导阶段
func (s *Store) ReplaceAll(users []*model.User, writings []*model.Writing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = users
	s.writings = writings
}

// Snapshot 返回当前状态的独立副本，供派生视图纯函数消费
type Snapshot struct {
	Users    []*model.User
	Writings []*model.Writing
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Users: cloneUsers(s.users), Writings: cloneWritings(s.writings)}
}

// UserByID 按 ID 查找用户副本；作者引用可能悬空，调用方须处理未命中
func (s *Store) UserByID(id string) (*model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return cloneUser(u), true
		}
	}
	return nil, false
}

func (s *Store) WritingByID(id string) (*model.Writing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, w := range s.writings {
		if w.ID == id {
			return cloneWriting(w), true
		}
	}
	return nil, false
}

// UpsertWriting 无 ID 视为新作品：分配 ID、初始化时间与计数；
// 有 ID 则整体替换已有记录。两种情况都强制刷新 UpdatedAt。
func (s *Store) UpsertWriting(ctx context.Context, writing *model.Writing) *model.Writing {
	s.mu.Lock()
	now := time.Now()

	w := cloneWriting(writing)
	w.UpdatedAt = now

	if w.ID == "" {
		w.ID = "writing-" + uuid.NewString()
		w.CreatedAt = now
		w.Stats = model.Stats{}
		w.Comments = []model.Comment{}
		s.writings = append(s.writings, w)
	} else {
		replaced := false
		for i, existing := range s.writings {
			if existing.ID == w.ID {
				s.writings[i] = w
				replaced = true
				break
			}
		}
		if !replaced {
			s.writings = append(s.writings, w)
		}
	}

	s.mu.Unlock()
	s.persist(ctx)
	return cloneWriting(w)
}

// SetFollowing 整体替换用户的关注集合
func (s *Store) SetFollowing(ctx context.Context, userID string, following []string) bool {
	s.mu.Lock()
	var target *model.User
	for _, u := range s.users {
		if u.ID == userID {
			target = u
			break
		}
	}
	if target == nil {
		s.mu.Unlock()
		log.WarnContext(ctx, "关注变更的目标用户不存在", "user_id", userID)
		return false
	}
	target.Following = append([]string(nil), following...)
	s.mu.Unlock()

	s.persist(ctx)
	return true
}

// AppendComment 评论追加到作品评论序列末尾，插入顺序即最终顺序
func (s *Store) AppendComment(ctx context.Context, writingID string, comment model.Comment) bool {
	s.mu.Lock()
	target := s.findWriting(writingID)
	if target == nil {
		s.mu.Unlock()
		log.WarnContext(ctx, "评论的目标作品不存在", "writing_id", writingID)
		return false
	}
	target.Comments = append(target.Comments, comment)
	s.mu.Unlock()

	s.persist(ctx)
	return true
}

// IncrementVote 对应计数 +1。不做用户级去重，同一用户可重复投票。
func (s *Store) IncrementVote(ctx context.Context, writingID string, direction VoteDirection) bool {
	s.mu.Lock()
	target := s.findWriting(writingID)
	if target == nil {
		s.mu.Unlock()
		log.WarnContext(ctx, "投票的目标作品不存在", "writing_id", writingID)
		return false
	}
	switch direction {
	case VoteUp:
		target.Stats.Upvotes++
	case VoteDown:
		target.Stats.Downvotes++
	default:
		s.mu.Unlock()
		log.WarnContext(ctx, "未知的投票方向", "direction", string(direction))
		return false
	}
	s.mu.Unlock()

	s.persist(ctx)
	return true
}

// IncrementView 浏览计数 +1
func (s *Store) IncrementView(ctx context.Context, writingID string) bool {
	s.mu.Lock()
	target := s.findWriting(writingID)
	if target == nil {
		s.mu.Unlock()
		log.WarnContext(ctx, "浏览的目标作品不存在", "writing_id", writingID)
		return false
	}
	target.Stats.Views++
	s.mu.Unlock()

	s.persist(ctx)
	return true
}

// ValidDirection 校验投票方向取值
func ValidDirection(raw string) (VoteDirection, bool) {
	switch VoteDirection(strings.ToLower(raw)) {
	case VoteUp:
		return VoteUp, true
	case VoteDown:
		return VoteDown, true
	}
	return "", false
}

func (s *Store) findWriting(id string) *model.Writing {
	for _, w := range s.writings {
		if w.ID == id {
			return w
		}
	}
	return nil
}

// persist 提交后全量透写；失败只记录日志，内存状态仍为会话权威
func (s *Store) persist(ctx context.Context) {
	snap := s.Snapshot()
	if err := s.gateway.Save(ctx, snap.Users, snap.Writings); err != nil {
		log.ErrorContext(ctx, "快照写入失败，内存状态不受影响", "err", err)
	}
}

func cloneUser(u *model.User) *model.User {
	c := *u
	c.Following = append([]string(nil), u.Following...)
	return &c
}

func cloneUsers(users []*model.User) []*model.User {
	out := make([]*model.User, len(users))
	for i, u := range users {
		out[i] = cloneUser(u)
	}
	return out
}

func cloneWriting(w *model.Writing) *model.Writing {
	c := *w
	c.Comments = append([]model.Comment(nil), w.Comments...)
	return &c
}

func cloneWritings(writings []*model.Writing) []*model.Writing {
	out := make([]*model.Writing, len(writings))
	for i, w := range writings {
		out[i] = cloneWriting(w)
	}
	return out
}
