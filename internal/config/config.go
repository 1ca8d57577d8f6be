// Package config resolves QuickQuiz settings from defaults, an optional
// YAML file and QUICKQUIZ_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Stats backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds everything needed to open stores and load content.
type Config struct {
	// DBPath is the SQLite database file. Empty means the XDG default.
	DBPath string `yaml:"db_path"`

	// QuizDir is an optional directory of extra quiz files.
	QuizDir string `yaml:"quiz_dir"`

	Stats StatsConfig `yaml:"stats"`
}

// StatsConfig selects and configures the statistics backend.
type StatsConfig struct {
	// Backend is one of "sqlite", "redis", "memory". Default: "sqlite".
	Backend string      `yaml:"backend"`
	Redis   RedisConfig `yaml:"redis"`
}

// RedisConfig holds connection settings for the redis backend.
type RedisConfig struct {
	Addr     string `yaml:"addr"`     // Default: "localhost:6379"
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"` // Default: "quickquiz:"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Stats: StatsConfig{
			Backend: BackendSQLite,
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "quickquiz:",
			},
		},
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with any QUICKQUIZ_* variables that are set.
func ApplyEnv(cfg Config) (Config, error) {
	if p := os.Getenv("QUICKQUIZ_DB"); p != "" {
		cfg.DBPath = p
	}
	if d := os.Getenv("QUICKQUIZ_QUIZ_DIR"); d != "" {
		cfg.QuizDir = d
	}
	if b := os.Getenv("QUICKQUIZ_STATS_BACKEND"); b != "" {
		cfg.Stats.Backend = b
	}
	if a := os.Getenv("QUICKQUIZ_REDIS_ADDR"); a != "" {
		cfg.Stats.Redis.Addr = a
	}
	if p := os.Getenv("QUICKQUIZ_REDIS_PASSWORD"); p != "" {
		cfg.Stats.Redis.Password = p
	}
	if d := os.Getenv("QUICKQUIZ_REDIS_DB"); d != "" {
		n, err := strconv.Atoi(d)
		if err != nil {
			return cfg, fmt.Errorf("QUICKQUIZ_REDIS_DB: %w", err)
		}
		cfg.Stats.Redis.DB = n
	}
	return cfg, nil
}

// Resolve builds the effective Config. An explicit path must exist; the
// default path is used only if present. Environment variables win over
// the file.
func Resolve(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		loaded, err := Load(path)
		switch {
		case err == nil:
			cfg = loaded
		case explicit || !errors.Is(err, os.ErrNotExist):
			return cfg, fmt.Errorf("load config: %w", err)
		}
	}

	cfg, err := ApplyEnv(cfg)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// DefaultPath returns $XDG_CONFIG_HOME/quickquiz/config.yaml, falling
// back to ~/.config.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "quickquiz", "config.yaml"), nil
}

// Validate checks that the selected backend is usable.
func (c Config) Validate() error {
	switch c.Stats.Backend {
	case BackendSQLite, BackendMemory:
	case BackendRedis:
		if c.Stats.Redis.Addr == "" {
			return fmt.Errorf("stats.redis.addr is required for the redis backend")
		}
		if c.Stats.Redis.DB < 0 {
			return fmt.Errorf("stats.redis.db must not be negative, got %d", c.Stats.Redis.DB)
		}
	default:
		return fmt.Errorf("unknown stats backend: %q", c.Stats.Backend)
	}
	return nil
}
