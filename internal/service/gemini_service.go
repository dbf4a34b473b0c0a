package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/fadilmartias/hr-backend/internal/config"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const maxEmbeddingInput = 10000

// geminiModels is the subset of *genai.Models the service uses.
type geminiModels interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	EmbedContent(ctx context.Context, model string, contents []*genai.Content, config *genai.EmbedContentConfig) (*genai.EmbedContentResponse, error)
}

type GeminiService struct {
	models         geminiModels
	model          string
	embeddingModel string
	MaxRetries     int
	BaseDelay      time.Duration
	MaxDelay       time.Duration
	RequestTimeout time.Duration
	log            *zap.Logger
}

func NewGeminiService(ctx context.Context, cfg *config.GeminiConfig, llmCfg *config.LLMConfig, log *zap.Logger) (*GeminiService, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  strings.TrimSpace(cfg.APIKey),
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.Backend == "vertex" {
		clientCfg = &genai.ClientConfig{
			Project:  cfg.Project,
			Location: cfg.Location,
			Backend:  genai.BackendVertexAI,
		}
	} else if clientCfg.APIKey == "" {
		return nil, errors.New("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiService{
		models:         client.Models,
		model:          cfg.Model,
		embeddingModel: cfg.EmbeddingModel,
		MaxRetries:     llmCfg.MaxRetries,
		BaseDelay:      time.Second,
		MaxDelay:       90 * time.Second,
		RequestTimeout: llmCfg.Timeout,
		log:            log.Named("gemini"),
	}, nil
}

func (s *GeminiService) Name() string {
	return "gemini:" + s.model
}

func (s *GeminiService) GenerateJSON(ctx context.Context, systemPrompt, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errors.New("prompt cannot be empty")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	genConfig := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0.1)),
		ResponseMIMEType: "application/json",
	}
	if systemPrompt != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}

	var result *genai.GenerateContentResponse
	err := s.retry(ctx, "GenerateContent", func() error {
		var err error
		result, err = s.models.GenerateContent(ctx, s.model, genai.Text(prompt), genConfig)
		return err
	})
	if err != nil {
		return "", err
	}

	if err := validateGenerateResponse(result); err != nil {
		return "", fmt.Errorf("invalid response: %w", err)
	}
	return result.Text(), nil
}

func (s *GeminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	trimmedText := strings.TrimSpace(text)
	if trimmedText == "" {
		return nil, errors.New("text for embedding cannot be empty")
	}

	if len(trimmedText) > maxEmbeddingInput {
		s.log.Warn("embedding input truncated", zap.Int("length", len(trimmedText)))
		trimmedText = trimmedText[:maxEmbeddingInput]
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	content := []*genai.Content{genai.NewContentFromText(trimmedText, genai.RoleUser)}

	var result *genai.EmbedContentResponse
	err := s.retry(ctx, "EmbedContent", func() error {
		var err error
		result, err = s.models.EmbedContent(ctx, s.embeddingModel, content, nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	embeddings, err := validateEmbeddingResponse(result)
	if err != nil {
		return nil, fmt.Errorf("invalid embedding response: %w", err)
	}
	return embeddings, nil
}

func (s *GeminiService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.RequestTimeout)
}

// retry runs call once plus up to MaxRetries more times for retryable errors.
func (s *GeminiService) retry(ctx context.Context, op string, call func() error) error {
	var lastErr error
	for attempt := 0; attempt <= s.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := s.calculateBackoff(attempt)
			s.log.Info("retrying request",
				zap.String("op", op),
				zap.Int("attempt", attempt),
				zap.Int("max_retries", s.MaxRetries),
				zap.Duration("delay", delay),
			)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("context done during retry: %w", ctx.Err())
			}
		}

		err := call()
		if err == nil {
			return nil
		}
		lastErr = err

		if !isRetryableError(err) {
			s.log.Warn("non-retryable error", zap.String("op", op), zap.Error(err))
			return fmt.Errorf("%s failed: %w", op, err)
		}
		s.log.Warn("retryable error", zap.String("op", op), zap.Int("attempt", attempt+1), zap.Error(err))
	}

	if s.MaxRetries == 0 {
		return fmt.Errorf("%s failed: %w", op, lastErr)
	}
	return fmt.Errorf("max retries (%d) exceeded for %s: %w", s.MaxRetries, op, lastErr)
}

func (s *GeminiService) calculateBackoff(attempt int) time.Duration {
	delay := s.BaseDelay * time.Duration(math.Pow(2, float64(attempt-1)))

	if delay > s.MaxDelay {
		delay = s.MaxDelay
	}

	jitter := time.Duration(float64(delay) * 0.25)
	return delay - jitter/2 + time.Duration(float64(jitter)*0.5)
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return retryableStatus(apiErr.Code)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return retryableStatus(apiErrPtr.Code)
	}

	errMsg := err.Error()
	return strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "temporary failure") ||
		strings.Contains(errMsg, "EOF")
}

func retryableStatus(code int) bool {
	switch code {
	case 429, 500, 502, 503, 504:
		return true
	}
	return false
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return errors.New("response is nil")
	}

	if len(resp.Candidates) == 0 {
		return errors.New("no candidates in response")
	}

	if resp.Candidates[0].Content == nil {
		return errors.New("candidate content is nil")
	}

	if len(resp.Candidates[0].Content.Parts) == 0 {
		return errors.New("no parts in content")
	}

	return nil
}

func validateEmbeddingResponse(resp *genai.EmbedContentResponse) ([]float32, error) {
	if resp == nil {
		return nil, errors.New("response is nil")
	}

	if len(resp.Embeddings) == 0 || resp.Embeddings[0] == nil {
		return nil, errors.New("no embeddings returned")
	}

	embeddings := resp.Embeddings[0].Values

	if len(embeddings) == 0 {
		return nil, errors.New("embedding vector is empty")
	}

	for i, val := range embeddings {
		if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
			return nil, fmt.Errorf("invalid embedding value at index %d: %v", i, val)
		}
	}

	return embeddings, nil
}
