package config

import (
	"strings"
	"sync"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	envViper *viper.Viper
	envOnce  sync.Once
)

// env returns the process-wide viper instance backed by environment variables.
// .env files are loaded by godotenv before the first call.
func env() *viper.Viper {
	envOnce.Do(func() {
		envViper = newEnv()
	})
	return envViper
}

func newEnv() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "HR Application Backend")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("APP_DEBUG", false)
	v.SetDefault("APP_JSON_LOG", false)
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost,http://localhost:3000")
	v.SetDefault("RATE_LIMIT_MAX", 50)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("DB_AUTO_MIGRATE", true)

	v.SetDefault("LLM_PROVIDER", ProviderGemini)
	v.SetDefault("LLM_MAX_RETRIES", 0)
	v.SetDefault("LLM_TIMEOUT", "0s")
	v.SetDefault("LLM_MAX_LOG_LENGTH", 2000)
	v.SetDefault("EMBEDDINGS_ENABLED", false)

	v.SetDefault("GEMINI_BACKEND", "gemini")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("GEMINI_EMBEDDING_MODEL", "gemini-embedding-001")

	v.SetDefault("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1")
	v.SetDefault("OPENROUTER_MODEL", "openai/gpt-4o-mini")
	return v
}

// BindFlag lets a command line flag override the environment variable key.
// It must be called before the first Load*Config call.
func BindFlag(key string, flag *pflag.Flag) error {
	return env().BindPFlag(key, flag)
}
