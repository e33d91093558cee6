package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const configPathEnv = "HOMESWERV_CONFIG"

// ErrMissingDatabaseURL is returned by Load when DATABASE_URL is unset. The
// config is still usable for commands that do not touch the database.
var ErrMissingDatabaseURL = errors.New("DATABASE_URL not set")

type Config struct {
	Env                 string        `yaml:"env"`
	ListenAddr          string        `yaml:"listenAddr"`
	DatabaseURL         string        `yaml:"databaseUrl"`
	SiteURL             string        `yaml:"siteUrl"`
	JWTSecret           string        `yaml:"jwtSecret"`
	LogLevel            string        `yaml:"logLevel"`
	LogFormat           string        `yaml:"logFormat"`
	PageSyncInterval    time.Duration `yaml:"pageSyncInterval"`
	MigrateOnStart      bool          `yaml:"migrateOnStart"`
	KanbanPersist       bool          `yaml:"kanbanPersist"`
	EnableSystemMetrics bool          `yaml:"enableSystemMetrics"`
}

func defaults() Config {
	return Config{
		Env:              "development",
		ListenAddr:       ":8080",
		SiteURL:          "http://localhost:8080",
		LogLevel:         "info",
		LogFormat:        "console",
		PageSyncInterval: time.Minute,
		KanbanPersist:    true,
	}
}

// Load reads an optional .env file, then the YAML file named by
// HOMESWERV_CONFIG, then environment variables; later sources win.
func Load() (Config, error) {
	// .env is optional; a missing file is the normal production case.
	_ = godotenv.Load()

	cfg := defaults()
	if path := os.Getenv(configPathEnv); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.Env = getenv("APP_ENV", cfg.Env)
	cfg.ListenAddr = getenv("LISTEN_ADDR", cfg.ListenAddr)
	cfg.DatabaseURL = getenv("DATABASE_URL", cfg.DatabaseURL)
	cfg.SiteURL = getenv("SITE_URL", cfg.SiteURL)
	cfg.JWTSecret = getenv("JWT_SECRET", cfg.JWTSecret)
	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getenv("LOG_FORMAT", cfg.LogFormat)
	cfg.PageSyncInterval = getenvDuration("PAGE_SYNC_INTERVAL", cfg.PageSyncInterval)
	cfg.MigrateOnStart = getenvBool("MIGRATE_ON_START", cfg.MigrateOnStart)
	cfg.KanbanPersist = getenvBool("KANBAN_PERSIST", cfg.KanbanPersist)
	cfg.EnableSystemMetrics = getenvBool("ENABLE_SYSTEM_METRICS", cfg.EnableSystemMetrics)

	if cfg.DatabaseURL == "" {
		// Not fatal here; callers that need the database decide.
		return cfg, ErrMissingDatabaseURL
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
