package model

type User struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	AvatarURL     string   `json:"avatarUrl"`
	GovIDVerified bool     `json:"govIdVerified"` // 仅作为展示数据，本服务不做实际核验
	Following     []string `json:"following"`
}

// IsFollowing 判断是否关注了指定作者
func (u *User) IsFollowing(authorID string) bool {
	for _, id := range u.Following {
		if id == authorID {
			return true
		}
	}
	return false
}
