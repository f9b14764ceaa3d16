package config

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"seoscan/internal/log"
)

const (
	PORT         = "PORT"
	METRICS_PORT = "METRICS_PORT"
	IS_DEV       = "IS_DEV"
	CHROME_TLS   = "CHROME_TLS"
)

type Config struct {
	Port        int    `mapstructure:"PORT"`
	MetricsPort int    `mapstructure:"METRICS_PORT"`
	IsDev       string `mapstructure:"IS_DEV"`
	ChromeTLS   bool   `mapstructure:"CHROME_TLS"`
}

var AppConfig *Config

func LoadEnv() {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		log.Logger.Info(".env file not found, using environment and defaults")
	}

	v.AutomaticEnv()

	v.SetDefault(PORT, 3000)
	v.SetDefault(METRICS_PORT, 8081)
	v.SetDefault(IS_DEV, "false")
	v.SetDefault(CHROME_TLS, false)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Logger.Fatal("Failed to unmarshal config", zap.Error(err))
	}

	AppConfig = &cfg

	if AppConfig.Port <= 0 || AppConfig.Port > 65535 {
		log.Logger.Fatal("PORT must be a valid TCP port", zap.Int("port", AppConfig.Port))
	}
}

func (c *Config) Dev() bool {
	return c.IsDev == "true"
}
