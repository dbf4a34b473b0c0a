package config

import (
	"sync"

	"github.com/spf13/viper"
)

type GeminiConfig struct {
	APIKey         string
	Backend        string
	Project        string
	Location       string
	Model          string
	EmbeddingModel string
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once
)

func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		geminiConfig = newGeminiConfig(env())
	})
	return geminiConfig
}

func newGeminiConfig(v *viper.Viper) *GeminiConfig {
	return &GeminiConfig{
		APIKey:         v.GetString("GEMINI_API_KEY"),
		Backend:        v.GetString("GEMINI_BACKEND"),
		Project:        v.GetString("GOOGLE_CLOUD_PROJECT"),
		Location:       v.GetString("GOOGLE_CLOUD_LOCATION"),
		Model:          v.GetString("GEMINI_MODEL"),
		EmbeddingModel: v.GetString("GEMINI_EMBEDDING_MODEL"),
	}
}
