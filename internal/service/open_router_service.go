package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fadilmartias/hr-backend/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// OpenRouterService talks to OpenRouter or any other OpenAI-compatible
// chat completions endpoint.
type OpenRouterService struct {
	client *resty.Client
	model  string
	log    *zap.Logger
}

func NewOpenRouterService(cfg *config.OpenRouterConfig, llmCfg *config.LLMConfig, log *zap.Logger) (*OpenRouterService, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("OPENROUTER_API_KEY not set")
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(llmCfg.MaxRetries).
		SetRetryWaitTime(time.Second).
		SetRetryMaxWaitTime(30 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return !errors.Is(err, context.Canceled)
			}
			return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= http.StatusInternalServerError
		})
	if llmCfg.Timeout > 0 {
		client.SetTimeout(llmCfg.Timeout)
	}

	return &OpenRouterService{client: client, model: cfg.Model, log: log.Named("openrouter")}, nil
}

func (s *OpenRouterService) Name() string {
	return "openrouter:" + s.model
}

func (s *OpenRouterService) GenerateJSON(ctx context.Context, systemPrompt, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errors.New("prompt cannot be empty")
	}

	messages := make([]map[string]string, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, map[string]string{"role": "system", "content": systemPrompt})
	}
	messages = append(messages, map[string]string{"role": "user", "content": prompt})

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"model":           s.model,
			"messages":        messages,
			"temperature":     0.1,
			"response_format": map[string]string{"type": "json_object"},
		}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}

	body := resp.String()
	if resp.IsError() {
		msg := gjson.Get(body, "error.message").String()
		if msg == "" {
			msg = resp.Status()
		}
		return "", fmt.Errorf("chat completion returned %d: %s", resp.StatusCode(), msg)
	}

	text := gjson.Get(body, "choices.0.message.content").String()
	if strings.TrimSpace(text) == "" {
		return "", errors.New("no response from LLM")
	}
	return text, nil
}
