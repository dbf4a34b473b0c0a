package config

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

type DBConfig struct {
	DSN         string
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	TimeZone    string
	AutoMigrate bool
}

var (
	dbConfig *DBConfig
	dbOnce   sync.Once
)

func LoadDBConfig() *DBConfig {
	dbOnce.Do(func() {
		dbConfig = newDBConfig(env())
	})
	return dbConfig
}

func newDBConfig(v *viper.Viper) *DBConfig {
	return &DBConfig{
		DSN:         v.GetString("DB_DSN"),
		Host:        v.GetString("DB_HOST"),
		Port:        v.GetString("DB_PORT"),
		User:        v.GetString("DB_USER"),
		Password:    v.GetString("DB_PASSWORD"),
		Name:        v.GetString("DB_NAME"),
		SSLMode:     v.GetString("DB_SSLMODE"),
		TimeZone:    v.GetString("DB_TIMEZONE"),
		AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
	}
}

// ConnectionString returns DB_DSN when set, otherwise a key/value DSN built from the parts.
func (c *DBConfig) ConnectionString() string {
	if c.DSN != "" {
		return c.DSN
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.Host,
		c.User,
		c.Password,
		c.Name,
		c.Port,
		c.SSLMode,
		c.TimeZone,
	)
}
