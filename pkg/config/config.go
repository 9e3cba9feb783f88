package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const DefaultEnvFile = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type PostgresConfig struct {
	Address  string `env:"DB_ADDRESS" envDefault:"localhost:5432"`
	Username string `env:"USER"`
	Password string `env:"PASSWORD"`
	DB       string `env:"DB" envDefault:"rexfit"`
}

type Config struct {
	APIAddress string `env:"API_ADDRESS" envDefault:"127.0.0.1:8080"`

	// badger, sqlite or postgres
	StorageDriver string         `env:"STORAGE_DRIVER" envDefault:"badger"`
	BadgerPath    string         `env:"BADGER_PATH" envDefault:"./data/badger"`
	SQLitePath    string         `env:"SQLITE_PATH" envDefault:"./data/rexfit.db"`
	Postgres      PostgresConfig `envPrefix:"POSTGRES_"`
	// Largest snapshot accepted, 0 disables the limit
	SnapshotQuotaBytes int `env:"SNAPSHOT_QUOTA_BYTES" envDefault:"5242880"`

	Timezone             string        `env:"TIMEZONE" envDefault:"Local"`
	NotificationInterval time.Duration `env:"NOTIFICATION_INTERVAL" envDefault:"1m"`
	CORSOrigins          []string      `env:"CORS_ORIGINS" envSeparator:","`
	LogLevel             string        `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads envFile when it exists, then parses the environment. Variables
// already set win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading env file: %w", err)
		}
	}
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// New returns the process-wide config loaded from DefaultEnvFile.
func New() *Config {
	once.Do(func() {
		cfg, err := Load(DefaultEnvFile)
		if err != nil {
			log.Fatal("loading envs error: ", err)
		}
		instance = cfg
	})
	return instance
}

// Location is the zone whose calendar decides what "today" is.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
