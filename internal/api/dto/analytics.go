package dto

// AnalyticsDTO 创作数据看板
type AnalyticsDTO struct {
	TotalViews        int             `json:"total_views"`
	TotalUpvotes      int             `json:"total_upvotes"`
	Followers         int             `json:"followers"`
	EstimatedEarnings float64         `json:"estimated_earnings"`
	Chart             []ChartPointDTO `json:"chart"`
}

// ChartPointDTO 月度浏览曲线点，Percent 为相对序列最大值的百分比
type ChartPointDTO struct {
	Month   string `json:"month"`
	Views   int    `json:"views"`
	Percent int    `json:"percent"`
}
