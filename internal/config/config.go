// Package config loads server settings from an optional YAML file layered
// over built-in defaults.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/petoverse-api/internal/errors"
)

// Config is the full server configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Redis   RedisConfig   `yaml:"redis"`
	Auth    AuthConfig    `yaml:"auth"`
	Latency LatencyConfig `yaml:"latency"`
	Drafts  DraftsConfig  `yaml:"drafts"`
	Thinker ThinkerConfig `yaml:"thinker"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig controls the gRPC listener
type ServerConfig struct {
	Port            int           `yaml:"port" validate:"min=1,max=65535"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"min=0"`
}

// RedisConfig points at the session store. An empty endpoint starts an
// embedded in-memory store instead.
type RedisConfig struct {
	Endpoint string `yaml:"endpoint" validate:"omitempty,hostname_port"`
	PoolSize int    `yaml:"pool_size" validate:"min=0"`
	UseTLS   bool   `yaml:"use_tls"`
}

// AuthConfig holds the demo credentials accepted by the mock login
type AuthConfig struct {
	DemoEmail    string        `yaml:"demo_email" validate:"required,email"`
	DemoPassword string        `yaml:"demo_password" validate:"required"`
	SessionTTL   time.Duration `yaml:"session_ttl" validate:"gt=0"`
}

// LatencyConfig sets the artificial delay of each simulated backend call
type LatencyConfig struct {
	Login  time.Duration `yaml:"login" validate:"min=0"`
	Signup time.Duration `yaml:"signup" validate:"min=0"`
	Chat   time.Duration `yaml:"chat" validate:"min=0"`
	Claim  time.Duration `yaml:"claim" validate:"min=0"`
}

// DraftsConfig controls creation draft storage
type DraftsConfig struct {
	TTL time.Duration `yaml:"ttl" validate:"gt=0"`
}

// ThinkerConfig controls the background notification worker. Zero disables it.
type ThinkerConfig struct {
	Interval time.Duration `yaml:"interval" validate:"min=0"`
}

// LogConfig controls logger output
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=trace debug info warn error"`
	Human bool   `yaml:"human"`
}

// Default returns the configuration used when no file is supplied
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            50051,
			ShutdownTimeout: 30 * time.Second,
		},
		Redis: RedisConfig{
			PoolSize: 10,
		},
		Auth: AuthConfig{
			DemoEmail:    "test@example.com",
			DemoPassword: "password",
			SessionTTL:   24 * time.Hour,
		},
		Latency: LatencyConfig{
			Login:  time.Second,
			Signup: time.Second,
			Chat:   time.Second,
			Claim:  2 * time.Second,
		},
		Drafts: DraftsConfig{
			TTL: 24 * time.Hour,
		},
		Thinker: ThinkerConfig{
			Interval: time.Hour,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults and validates the result. An empty path
// returns the validated defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		}
		if err := Parse(data, cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse overlays YAML data onto cfg; keys absent from data keep their value
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config")
	}
	return nil
}
