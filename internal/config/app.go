package config

import (
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type AppConfig struct {
	Name             string
	Env              string
	Port             string
	BaseURL          string
	Debug            bool
	JSONLog          bool
	CORSAllowOrigins string
	RateLimitMax     int
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		appConfig = newAppConfig(env())
	})
	return appConfig
}

func newAppConfig(v *viper.Viper) *AppConfig {
	port := v.GetString("APP_PORT")
	if port != "" && !strings.Contains(port, ":") {
		port = ":" + port
	}
	return &AppConfig{
		Name:             v.GetString("APP_NAME"),
		Env:              v.GetString("APP_ENV"),
		Port:             port,
		BaseURL:          v.GetString("APP_URL"),
		Debug:            v.GetBool("APP_DEBUG"),
		JSONLog:          v.GetBool("APP_JSON_LOG"),
		CORSAllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		RateLimitMax:     v.GetInt("RATE_LIMIT_MAX"),
	}
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}
