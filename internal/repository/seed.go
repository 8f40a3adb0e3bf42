package repository

import (
	"Inkstone/internal/model"
	"time"
)

// 种子数据：持久化记录缺失或损坏时的兜底数据集，需满足与线上数据相同的约束
// （ID 唯一、作者引用有效、关注列表不含自身）。

func SeedUsers() []*model.User {
	return []*model.User{
		{
			ID:            "user-1",
			Name:          "Alex Johnson",
			AvatarURL:     "https://picsum.photos/id/1005/100/100",
			GovIDVerified: true,
			Following:     []string{"user-2", "user-3"},
		},
		{
			ID:            "user-2",
			Name:          "Maria Garcia",
			AvatarURL:     "https://picsum.photos/id/1011/100/100",
			GovIDVerified: true,
			Following:     []string{"user-3"},
		},
		{
			ID:            "user-3",
			Name:          "Chen Wei",
			AvatarURL:     "https://picsum.photos/id/1025/100/100",
			GovIDVerified: true,
			Following:     []string{},
		},
	}
}

func SeedWritings() []*model.Writing {
	return []*model.Writing{
		{
			ID:       "writing-1",
			AuthorID: "user-2",
			Title:    "The Future of Urban Gardening",
			Content: "Urban gardening is not just a hobby; it's a movement towards sustainable living in concrete jungles. " +
				"By transforming balconies, rooftops, and small patios into green oases, city dwellers can reconnect with nature and their food sources...\n\n" +
				"Here is an image of a beautiful rooftop garden:\n" +
				"![Rooftop Garden](https://picsum.photos/seed/garden/600/400)\n\n" +
				"For more information, check out this [great resource](https://example.com).",
			IsPublished: true,
			CreatedAt:   time.Date(2023, 10, 26, 10, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2023, 10, 26, 11, 30, 0, 0, time.UTC),
			Template:    model.TemplateArticle,
			Stats:       model.Stats{Views: 12500, Upvotes: 2300, Downvotes: 45},
			Comments: []model.Comment{
				{
					ID:        "comment-1",
					AuthorID:  "user-1",
					Content:   "Fantastic article, Maria! Very inspiring.",
					CreatedAt: time.Date(2023, 10, 26, 12, 0, 0, 0, time.UTC),
				},
				{
					ID:        "comment-2",
					AuthorID:  "user-3",
					Content:   "I agree. I'm going to start my own balcony garden now.",
					CreatedAt: time.Date(2023, 10, 26, 14, 15, 0, 0, time.UTC),
				},
			},
			FontFamily:      model.FontSans,
			BackgroundColor: "#ffffff",
		},
		{
			ID:       "writing-2",
			AuthorID: "user-3",
			Title:    "A Short Story About Time",
			Content: "He found the clock in a dusty antique shop, its hands frozen at 3:14. " +
				"The shopkeeper warned him it was broken, but he felt an inexplicable pull. " +
				"That night, as he wound the ancient key, the world outside his window began to blur...",
			IsPublished:     true,
			CreatedAt:       time.Date(2023, 10, 25, 15, 20, 0, 0, time.UTC),
			UpdatedAt:       time.Date(2023, 10, 25, 15, 20, 0, 0, time.UTC),
			Template:        model.TemplateNote,
			Stats:           model.Stats{Views: 8900, Upvotes: 1800, Downvotes: 12},
			Comments:        []model.Comment{},
			FontFamily:      model.FontSerif,
			BackgroundColor: "#fefce8",
		},
		{
			ID:       "writing-3",
			AuthorID: "user-1",
			Title:    "Quarterly Tech Report - Q3 2023",
			Content: "This report summarizes the key performance indicators for the third quarter. " +
				"We saw a significant increase in user engagement following the new feature launch. " +
				"However, server costs have also risen, requiring a strategy for optimization...",
			IsPublished:     false,
			CreatedAt:       time.Date(2023, 10, 22, 9, 0, 0, 0, time.UTC),
			UpdatedAt:       time.Date(2023, 10, 27, 14, 0, 0, 0, time.UTC),
			Template:        model.TemplateReport,
			Stats:           model.Stats{},
			Comments:        []model.Comment{},
			FontFamily:      model.FontMono,
			BackgroundColor: "#f3f4f6",
		},
	}
}

func SeedAnalytics() *model.Analytics {
	return &model.Analytics{
		TotalViews:        450000,
		TotalUpvotes:      15200,
		Followers:         2100,
		EstimatedEarnings: 345.67,
		PerformanceHistory: []model.MonthlyViews{
			{Month: "May", Views: 50000},
			{Month: "Jun", Views: 75000},
			{Month: "Jul", Views: 120000},
			{Month: "Aug", Views: 95000},
			{Month: "Sep", Views: 110000},
		},
	}
}
