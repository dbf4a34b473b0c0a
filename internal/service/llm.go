package service

import (
	"context"
	"strings"
)

// LLMClient sends a prompt to a language model and returns its raw JSON answer.
type LLMClient interface {
	GenerateJSON(ctx context.Context, systemPrompt, prompt string) (string, error)
	Name() string
}

// Embedder turns text into an embedding vector.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// stripCodeFence removes a surrounding markdown code fence some models add
// around JSON answers.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
