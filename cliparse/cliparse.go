// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port         int     `yaml:"port"`
	DatabaseURL  string  `yaml:"database_url"`
	DatabaseType string  `yaml:"database_type"`
	RateLimit    float64 `yaml:"rate_limit"`
	RateBurst    int     `yaml:"rate_burst"`
	LogLevel     string  `yaml:"log_level"`
	TrustProxy   bool    `yaml:"trust_proxy"`
	ConfigFile   string  `yaml:"-"`
}

const (
	DefaultPort        = 3318
	DefaultDatabaseURL = "file:recipes.db"
	DefaultRateLimit   = 10
	DefaultRateBurst   = 20
)

// ParseFlags validates flags and fills blanks from env, then the config file,
// then defaults.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("recipe-box", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.Float64Var(&cfg.RateLimit, "rate", -1, "Requests per second per client (0 disables)")
	fs.IntVar(&cfg.RateBurst, "burst", 0, "Rate limiter burst size")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.TrustProxy, "trust-proxy", false, "Take client IPs from X-Forwarded-For / X-Real-IP")
	fs.StringVar(&cfg.ConfigFile, "config", "", "YAML config file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	trustProxySet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "trust-proxy" {
			trustProxySet = true
		}
	})

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
	}
	if cfg.RateLimit < 0 {
		if s := os.Getenv("RATE_LIMIT"); s != "" {
			rate, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return Config{}, errors.New("invalid RATE_LIMIT env variable")
			}
			cfg.RateLimit = rate
		}
	}
	if cfg.RateBurst == 0 {
		if s := os.Getenv("RATE_BURST"); s != "" {
			burst, err := strconv.Atoi(s)
			if err != nil {
				return Config{}, errors.New("invalid RATE_BURST env variable")
			}
			cfg.RateBurst = burst
		}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv("LOG_LEVEL")
	}
	if !trustProxySet {
		if s := os.Getenv("TRUST_PROXY"); s != "" {
			trust, err := strconv.ParseBool(s)
			if err != nil {
				return Config{}, errors.New("invalid TRUST_PROXY env variable")
			}
			cfg.TrustProxy = trust
			trustProxySet = true
		}
	}
	if cfg.ConfigFile == "" {
		cfg.ConfigFile = os.Getenv("RECIPES_CONFIG")
	}

	// Then the config file
	if cfg.ConfigFile != "" {
		fileCfg, err := LoadFile(cfg.ConfigFile)
		if err != nil {
			return Config{}, err
		}
		cfg.fillFrom(fileCfg)
		if !trustProxySet {
			cfg.TrustProxy = fileCfg.TrustProxy
		}
	}

	// Then defaults
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = DefaultDatabaseURL
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = "sqlite"
	}
	if cfg.RateLimit < 0 {
		cfg.RateLimit = DefaultRateLimit
	}
	if cfg.RateBurst == 0 {
		cfg.RateBurst = DefaultRateBurst
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port out of range: %d", cfg.Port)
	}
	if cfg.RateBurst < 1 {
		return Config{}, fmt.Errorf("rate burst must be positive: %d", cfg.RateBurst)
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFile reads a YAML config file. Absent keys are left zero, except
// rate_limit which is -1 so that an explicit 0 can disable limiting.
func LoadFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Config{RateLimit: -1}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) fillFrom(other Config) {
	if c.Port == 0 {
		c.Port = other.Port
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = other.DatabaseURL
	}
	if c.DatabaseType == "" {
		c.DatabaseType = other.DatabaseType
	}
	if c.RateLimit < 0 {
		c.RateLimit = other.RateLimit
	}
	if c.RateBurst == 0 {
		c.RateBurst = other.RateBurst
	}
	if c.LogLevel == "" {
		c.LogLevel = other.LogLevel
	}
}

// ParseLogLevel maps a level name to a slog.Level
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
