package model

// Analytics 创作数据汇总，来源独立于单篇 Writing 的计数
type Analytics struct {
	TotalViews         int            `json:"totalViews"`
	TotalUpvotes       int            `json:"totalUpvotes"`
	Followers          int            `json:"followers"`
	EstimatedEarnings  float64        `json:"estimatedEarnings"`
	PerformanceHistory []MonthlyViews `json:"performanceHistory"`
}

type MonthlyViews struct {
	Month string `json:"month"`
	Views int    `json:"views"`
}
