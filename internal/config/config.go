// Package config loads and validates process configuration.
// Values come from the environment (optionally seeded from a .env file)
// with development defaults for everything except production secrets.
package config

import (
	"fmt"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"
)

// DefaultJWTSecret is only acceptable outside production.
const DefaultJWTSecret = "dev-secret-change-me"

// Config holds every tunable of the postboard service.
type Config struct {
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"`

	JWTSecret   string        `mapstructure:"JWT_SECRET"`
	JWTTTL      time.Duration `mapstructure:"JWT_TTL"`
	RequireAuth bool          `mapstructure:"REQUIRE_AUTH"`

	ReactionsBackend string `mapstructure:"REACTIONS_BACKEND"`
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisDB          int    `mapstructure:"REDIS_DB"`
	RedisKeyPrefix   string `mapstructure:"REDIS_KEY_PREFIX"`

	SeedDemoData   bool   `mapstructure:"SEED_DEMO_DATA"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`

	ReadTimeout  time.Duration `mapstructure:"SERVER_READ_TIMEOUT"`
	WriteTimeout time.Duration `mapstructure:"SERVER_WRITE_TIMEOUT"`
	IdleTimeout  time.Duration `mapstructure:"SERVER_IDLE_TIMEOUT"`

	ConsulAddr  string `mapstructure:"CONSUL_HTTP_ADDR"`
	ConsulToken string `mapstructure:"CONSUL_HTTP_TOKEN"`
	ServiceHost string `mapstructure:"SERVICE_HOST"`
}

var defaults = map[string]any{
	"PORT":                 "8080",
	"APP_ENV":              "development",
	"JWT_SECRET":           DefaultJWTSecret,
	"JWT_TTL":              "30m",
	"REQUIRE_AUTH":         true,
	"REACTIONS_BACKEND":    "memory",
	"REDIS_ADDR":           "localhost:6379",
	"REDIS_PASSWORD":       "",
	"REDIS_DB":             0,
	"REDIS_KEY_PREFIX":     "postboard",
	"SEED_DEMO_DATA":       false,
	"ALLOWED_ORIGINS":      "http://localhost:5173,http://localhost:3000",
	"SERVER_READ_TIMEOUT":  "15s",
	"SERVER_WRITE_TIMEOUT": "60s",
	"SERVER_IDLE_TIMEOUT":  "120s",
	"CONSUL_HTTP_ADDR":     "",
	"CONSUL_HTTP_TOKEN":    "",
	"SERVICE_HOST":         "localhost",
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	cfg.ReactionsBackend = strings.ToLower(strings.TrimSpace(cfg.ReactionsBackend))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// IsProduction reports whether APP_ENV names a production deployment.
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// Origins splits ALLOWED_ORIGINS into a list, dropping blanks.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
