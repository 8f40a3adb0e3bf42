package llm

import (
	"context"
	"errors"
	log "log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

type llmCorrector struct {
	model llms.Model
}

// Correct 请求大模型纠正文本片段，只返回纠正后的文本本身
func (s *llmCorrector) Correct(ctx context.Context, fragment string) (string, error) {
	if err := CorrectSem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer CorrectSem.Release(1)

	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(correctPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(fragment),
			},
		},
	}

	log.InfoContext(ctx, "正在请求AI大模型纠错")
	resp, err := s.model.GenerateContent(ctx, messages, llms.WithTemperature(0.1))
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("纠错-AI大模型返回数据为空")
	}
	return strings.TrimSpace(resp.Choices[0].Content), nil
}
