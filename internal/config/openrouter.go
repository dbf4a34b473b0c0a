package config

import (
	"sync"

	"github.com/spf13/viper"
)

type OpenRouterConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

var (
	openRouterConfig *OpenRouterConfig
	openRouterOnce   sync.Once
)

func LoadOpenRouterConfig() *OpenRouterConfig {
	openRouterOnce.Do(func() {
		openRouterConfig = newOpenRouterConfig(env())
	})
	return openRouterConfig
}

func newOpenRouterConfig(v *viper.Viper) *OpenRouterConfig {
	return &OpenRouterConfig{
		APIKey:  v.GetString("OPENROUTER_API_KEY"),
		BaseURL: v.GetString("OPENROUTER_BASE_URL"),
		Model:   v.GetString("OPENROUTER_MODEL"),
	}
}
