package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs every access token. Loaded once at boot; the process
	// refuses to start without one outside development.
	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,   default=24h"`
	BcryptCost int           `env:"BCRYPT_COST, default=10"`

	LoginRate  float64 `env:"LOGIN_RATE,  default=5"`
	LoginBurst int     `env:"LOGIN_BURST, default=10"`

	SeedDemoUsers bool `env:"SEED_DEMO_USERS, default=false"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=nkiosk"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.JWTSecret == "" {
		if cfg.Env != "development" {
			return nil, fmt.Errorf("config: JWT_SECRET is required when ENV=%s", cfg.Env)
		}
		cfg.JWTSecret = "dev-only-insecure-secret"
	}

	return &cfg, nil
}

// IsDevelopment reports whether the process runs in the development profile.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
