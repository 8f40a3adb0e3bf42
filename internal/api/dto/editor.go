package dto

// MarkdownInsertReq 在草稿选区处插入 markdown 结构
type MarkdownInsertReq struct {
	Content        string `json:"content"`
	SelectionStart int    `json:"selection_start" binding:"min=0"`
	SelectionEnd   int    `json:"selection_end" binding:"min=0"`
	Kind           string `json:"kind" binding:"required,oneof=link image"`
}

// MarkdownInsertDTO 插入结果，选区指向 url 占位符
type MarkdownInsertDTO struct {
	Content        string `json:"content"`
	SelectionStart int    `json:"selection_start"`
	SelectionEnd   int    `json:"selection_end"`
}

// GrammarCheckReq 语法检查：取草稿选区覆盖的片段送检
type GrammarCheckReq struct {
	Content        string `json:"content"`
	SelectionStart int    `json:"selection_start" binding:"min=0"`
	SelectionEnd   int    `json:"selection_end" binding:"min=0"`
}

// GrammarCheckDTO 检查结果；服务不可用时以数据形式返回说明，不中断编辑
type GrammarCheckDTO struct {
	Status     string `json:"status"` // ok | service_failed
	Suggestion string `json:"suggestion,omitempty"`
	Message    string `json:"message,omitempty"`
}

// GrammarApplyReq 套用建议：携带发起检查时捕获的选区偏移
type GrammarApplyReq struct {
	Content        string `json:"content"`
	SelectionStart int    `json:"selection_start" binding:"min=0"`
	SelectionEnd   int    `json:"selection_end" binding:"min=0"`
	Suggestion     string `json:"suggestion" binding:"required"`
}

// GrammarApplyDTO 套用后的新草稿内容
type GrammarApplyDTO struct {
	Content string `json:"content"`
}
