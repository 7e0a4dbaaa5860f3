package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort        int    `mapstructure:"APP_PORT"`
	StorageBackend string `mapstructure:"STORAGE_BACKEND"`
	DatabasePath   string `mapstructure:"DATABASE_PATH"`
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	GatewayURL     string `mapstructure:"GATEWAY_URL"`
	UploadDir      string `mapstructure:"UPLOAD_DIR"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("STORAGE_BACKEND", "sqlite")
	viper.SetDefault("DATABASE_PATH", "/data/chatbot.db")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("GATEWAY_URL", "http://localhost:9090")
	viper.SetDefault("UPLOAD_DIR", "/data/uploads")
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

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
