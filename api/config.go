package api

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config contains gateway configuration
type Config struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`

	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Node      NodeConfig      `yaml:"node"`
}

// RateLimitConfig bounds requests per client IP
type RateLimitConfig struct {
	Enabled           bool    `yaml:"enabled"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
	// TxPerSecond is the stricter limit for POST requests
	TxPerSecond float64       `yaml:"tx_per_second"`
	TxBurst     int           `yaml:"tx_burst"`
	IdleTTL     time.Duration `yaml:"idle_ttl"`
}

// NodeConfig seeds the in-process local node
type NodeConfig struct {
	ChainID   string `yaml:"chain_id"`
	GenesisAt int64  `yaml:"genesis_time"`
	// Accounts are funded at startup, keyed by bech32 address
	Accounts []SeedAccount `yaml:"accounts"`
}

// SeedAccount is a funded development account
type SeedAccount struct {
	Address string `yaml:"address"`
	Coins   string `yaml:"coins"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Host:         "0.0.0.0",
		Port:         8080,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 100,
			Burst:             200,
			TxPerSecond:       10,
			TxBurst:           20,
			IdleTTL:           10 * time.Minute,
		},
		Node: NodeConfig{
			ChainID: "ajo-local-1",
		},
	}
}

// LoadConfig reads a YAML file over the defaults. A missing file yields the
// defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.ReadTimeout < 0 || c.WriteTimeout < 0 {
		return fmt.Errorf("timeouts must be non-negative")
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0 {
			return fmt.Errorf("rate limit needs a positive rate and burst")
		}
		if c.RateLimit.TxPerSecond <= 0 || c.RateLimit.TxBurst <= 0 {
			return fmt.Errorf("tx rate limit needs a positive rate and burst")
		}
	}
	for _, acc := range c.Node.Accounts {
		if acc.Address == "" {
			return fmt.Errorf("seed account without address")
		}
	}
	return nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
