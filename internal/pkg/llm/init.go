package llm

import (
	"Inkstone/internal/api/config"
	"context"
	"fmt"
	log "log/slog"

	"github.com/tmc/langchaingo/llms/openai"
)

const correctPrompt = "You are an expert editor. Correct any grammatical errors in the following text. " +
	"Provide only the corrected text as a single string, without any preamble or explanation. " +
	"If the text is already correct, return it as is."

// Corrector 文本纠错提供方
type Corrector interface {
	Correct(ctx context.Context, fragment string) (string, error)
}

// NewCorrector 按配置选择纠错提供方：openai 兼容大模型或 HTTP 纠错服务
func NewCorrector(cfg config.GrammarConfig) (Corrector, error) {
	switch cfg.Provider {
	case "openai":
		model, err := openai.New(
			openai.WithModel(cfg.Model),
			openai.WithToken(cfg.ApiKey),
			openai.WithBaseURL(cfg.URL),
		)
		if err != nil {
			log.Error("AI大模型初始化失败", "err", err)
			return nil, err
		}
		return &llmCorrector{model: model}, nil
	case "http":
		return newHTTPCorrector(cfg), nil
	default:
		return nil, fmt.Errorf("未知的纠错服务提供方: %q", cfg.Provider)
	}
}
