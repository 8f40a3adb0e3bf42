package model

import (
	"time"
)

const (
	TemplateBlank   = "blank"
	TemplateReport  = "report"
	TemplateArticle = "article"
	TemplateNote    = "note"
)

const (
	FontSerif = "serif"
	FontSans  = "sans"
	FontMono  = "mono"
)

type Writing struct {
	ID              string    `json:"id"`
	AuthorID        string    `json:"authorId"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	IsPublished     bool      `json:"isPublished"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	Template        string    `json:"template"`
	Stats           Stats     `json:"stats"`
	Comments        []Comment `json:"comments"`
	FontFamily      string    `json:"fontFamily"`
	BackgroundColor string    `json:"backgroundColor"`
}

// Stats 计数只增不减
type Stats struct {
	Views     int `json:"views"`
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
}

// TrendingScore 热度分
func (w *Writing) TrendingScore() int {
	return w.Stats.Upvotes*10 + w.Stats.Views - w.Stats.Downvotes*5
}
