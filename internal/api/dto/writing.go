package dto

// WritingUpsertReq 保存编辑会话：无 ID 视为新建
type WritingUpsertReq struct {
	ID              string `json:"id"`
	Title           string `json:"title" binding:"required,max=255"`
	Content         string `json:"content"`
	IsPublished     bool   `json:"is_published"`
	Template        string `json:"template" binding:"required,oneof=blank report article note"`
	FontFamily      string `json:"font_family" binding:"required,oneof=serif sans mono"`
	BackgroundColor string `json:"background_color"`
}

// WritingDTO 作品详情
type WritingDTO struct {
	ID              string       `json:"id"`
	AuthorID        string       `json:"author_id"`
	Title           string       `json:"title"`
	Content         string       `json:"content"`
	IsPublished     bool         `json:"is_published"`
	CreatedAt       string       `json:"created_at"`
	UpdatedAt       string       `json:"updated_at"`
	Template        string       `json:"template"`
	Stats           StatsDTO     `json:"stats"`
	Comments        []CommentDTO `json:"comments"`
	FontFamily      string       `json:"font_family"`
	BackgroundColor string       `json:"background_color"`
}

type StatsDTO struct {
	Views     int `json:"views"`
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
}

// CommentDTO 评论详情
type CommentDTO struct {
	ID        string `json:"id"`
	AuthorID  string `json:"author_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}
