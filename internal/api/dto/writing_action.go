package dto

// VoteReq 投票请求
type VoteReq struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// CommentCreateReq 发表评论请求
type CommentCreateReq struct {
	Content string `json:"content" binding:"required,max=1000"`
}
