package dto

// UserDTO 用户信息
type UserDTO struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	AvatarURL     string   `json:"avatar_url"`
	GovIDVerified bool     `json:"gov_id_verified"`
	Following     []string `json:"following"`
}

// FollowingDTO 关注集合变更后的最新状态
type FollowingDTO struct {
	UserID      string   `json:"user_id"`
	Following   []string `json:"following"`
	IsFollowing bool     `json:"is_following"`
}
