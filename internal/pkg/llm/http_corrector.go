package llm

import (
	"Inkstone/internal/api/config"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// httpCorrector 对接标准 HTTP 纠错服务：POST 片段，返回纠正结果
type httpCorrector struct {
	client   *resty.Client
	endpoint string
}

type httpCorrectReq struct {
	Text string `json:"text"`
}

type httpCorrectResp struct {
	Corrected string `json:"corrected"`
	Error     string `json:"error"`
}

func newHTTPCorrector(cfg config.GrammarConfig) *httpCorrector {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	return &httpCorrector{client: client, endpoint: cfg.Endpoint}
}

func (s *httpCorrector) Correct(ctx context.Context, fragment string) (string, error) {
	if err := CorrectSem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer CorrectSem.Release(1)

	var result httpCorrectResp
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(&httpCorrectReq{Text: fragment}).
		SetResult(&result).
		Post(s.endpoint)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("纠错服务响应异常: %s", resp.Status())
	}
	if result.Error != "" {
		return "", fmt.Errorf("纠错服务返回错误: %s", result.Error)
	}
	return result.Corrected, nil
}
