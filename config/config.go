package config

import (
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server configuration
	Port           string   `env:"PORT" envDefault:"5000"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	// Data paths: searches may be split over several files matched by a glob
	SearchesGlob string `env:"AMADEUS_SEARCHES_GLOB" envDefault:"data/search_completo*.parquet"`
	BookingsPath string `env:"AMADEUS_BOOKINGS_PATH" envDefault:"data/bookings_completo.parquet"`

	// Agent runtime
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL" envDefault:"gpt-4"`
	MaxToolCalls int    `env:"AGENT_MAX_TOOL_CALLS" envDefault:"8"`
}

func LoadConfig() (*Config, error) {
	// A local .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
