package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort      int    `mapstructure:"APP_PORT"`
	DatabasePath string `mapstructure:"DATABASE_PATH"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`

	// Remote AI backend.
	RunpodURL         string        `mapstructure:"RUNPOD_API_URL"`
	RunpodAPIKey      string        `mapstructure:"RUNPOD_API_KEY"`
	RunpodTimeout     time.Duration `mapstructure:"RUNPOD_TIMEOUT"`
	RunpodUseFallback bool          `mapstructure:"RUNPOD_USE_FALLBACK"`
	RunpodTopK        int           `mapstructure:"RUNPOD_TOP_K"`

	// FallbackFile overrides the embedded fallback tables when set.
	FallbackFile string `mapstructure:"FALLBACK_FILE"`

	// Optional shared game catalog cache. Empty RedisAddr disables it.
	RedisAddr       string        `mapstructure:"REDIS_ADDR"`
	RedisPassword   string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB         int           `mapstructure:"REDIS_DB"`
	CatalogCacheTTL time.Duration `mapstructure:"CATALOG_CACHE_TTL"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("DATABASE_PATH", "./data/chatbot.db")
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("RUNPOD_API_URL", "http://localhost:8000")
	viper.SetDefault("RUNPOD_API_KEY", "")
	viper.SetDefault("RUNPOD_TIMEOUT", 30*time.Second)
	viper.SetDefault("RUNPOD_USE_FALLBACK", true)
	viper.SetDefault("RUNPOD_TOP_K", 3)
	viper.SetDefault("FALLBACK_FILE", "")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CATALOG_CACHE_TTL", 24*time.Hour)

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {

			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
