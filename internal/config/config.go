package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the service settings read from the environment.
type Config struct {
	Port      int    `env:"CARDSIM_PORT" envDefault:"7700"`
	CardsFile string `env:"CARDSIM_CARDS_FILE" envDefault:"internal/data/cards.json"`
	GinMode   string `env:"CARDSIM_GIN_MODE" envDefault:"release"`

	// RedisAddrs is empty when definition lookups should not be cached.
	RedisAddrs []string      `env:"CARDSIM_REDIS_ADDRS" envSeparator:","`
	RedisTTL   time.Duration `env:"CARDSIM_REDIS_TTL" envDefault:"10m"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) RedisEnabled() bool {
	return len(c.RedisAddrs) > 0
}
