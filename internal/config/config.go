package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server    Server    `mapstructure:"server"`
	Database  Database  `mapstructure:"database"`
	API       API       `mapstructure:"api"`
	Analytics Analytics `mapstructure:"analytics"`
	Logger    Logger    `mapstructure:"logger"`
}

// Server holds the configuration for the mock trades API.
type Server struct {
	Port               int    `mapstructure:"port"`
	CORSOrigin         string `mapstructure:"cors_origin"`
	RateLimitPerMinute int    `mapstructure:"rate_limit_per_minute"`
}

// Database holds the configuration for the trade store.
type Database struct {
	DSN string `mapstructure:"dsn"`
}

// API holds the configuration for the trades API client.
type API struct {
	BaseURL        string  `mapstructure:"base_url"`
	RateLimit      float64 `mapstructure:"rate_limit"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds"`
	MaxRetries     int     `mapstructure:"max_retries"`
}

// Analytics holds defaults for report generation.
type Analytics struct {
	StartingEquity float64 `mapstructure:"starting_equity"`
}

// Logger holds the configuration for the logger.
type Logger struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// LoadConfig reads configuration from a config.yml under path, a .env file
// in the working directory, and environment variables, in increasing order
// of precedence. A missing config file is not an error.
func LoadConfig(path string) (config Config, err error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
	}

	err = v.Unmarshal(&config)
	return
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5001)
	v.SetDefault("server.cors_origin", "*")
	v.SetDefault("server.rate_limit_per_minute", 60)

	v.SetDefault("database.dsn", "file::memory:?cache=shared")

	v.SetDefault("api.base_url", "http://localhost:5001")
	v.SetDefault("api.rate_limit", 20) // requests per second
	v.SetDefault("api.rate_limit_burst", 5)
	v.SetDefault("api.timeout_seconds", 10)
	v.SetDefault("api.max_retries", 3)

	v.SetDefault("analytics.starting_equity", 0)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.max_size_mb", 100)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age_days", 28)
}
