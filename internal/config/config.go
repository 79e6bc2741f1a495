package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	BotToken    string `env:"BOT_TOKEN,required"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Remote shop API
	APIBaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:5000"`

	// Catalog limits
	RecommendationLimit int `env:"RECOMMENDATION_LIMIT" envDefault:"4"`
	SearchLimit         int `env:"SEARCH_LIMIT" envDefault:"12"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Telegram ops logging (0 disables)
	OpsChatID int64 `env:"OPS_TELEGRAM_CHAT_ID"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
