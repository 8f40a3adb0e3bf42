package dto

// FeedItemDTO 信息流条目，作者信息内联返回
type FeedItemDTO struct {
	Writing       WritingDTO `json:"writing"`
	Author        UserDTO    `json:"author"`
	TrendingScore int        `json:"trending_score"`
}
