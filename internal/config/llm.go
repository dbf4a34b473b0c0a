package config

import (
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
)

type LLMConfig struct {
	Provider          string
	MaxRetries        int
	Timeout           time.Duration
	MaxLogLength      int
	EmbeddingsEnabled bool
}

var (
	llmConfig *LLMConfig
	llmOnce   sync.Once
)

func LoadLLMConfig() *LLMConfig {
	llmOnce.Do(func() {
		llmConfig = newLLMConfig(env())
	})
	return llmConfig
}

func newLLMConfig(v *viper.Viper) *LLMConfig {
	return &LLMConfig{
		Provider:          strings.ToLower(strings.TrimSpace(v.GetString("LLM_PROVIDER"))),
		MaxRetries:        v.GetInt("LLM_MAX_RETRIES"),
		Timeout:           v.GetDuration("LLM_TIMEOUT"),
		MaxLogLength:      v.GetInt("LLM_MAX_LOG_LENGTH"),
		EmbeddingsEnabled: v.GetBool("EMBEDDINGS_ENABLED"),
	}
}
