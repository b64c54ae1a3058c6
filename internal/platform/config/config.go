package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config del servicio. Todo viene de env vars.
type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	AppName string `env:"APP_NAME" envDefault:"virtual-pet"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// Storage del snapshot. Si STORAGE está vacío se elige por precedencia:
	// DB_DSN > SQLITE_PATH > SNAPSHOT_FILE > memoria.
	StorageName  string `env:"STORAGE"`
	DBDSN        string `env:"DB_DSN"`
	SQLitePath   string `env:"SQLITE_PATH"`
	SnapshotFile string `env:"SNAPSHOT_FILE" envDefault:"pet.json"`

	AutosaveInterval time.Duration `env:"AUTOSAVE_INTERVAL" envDefault:"30s"`
	ActivityCapacity int           `env:"ACTIVITY_CAPACITY" envDefault:"1000"`
}

type StorageKind string

const (
	StoragePostgres StorageKind = "postgres"
	StorageSQLite   StorageKind = "sqlite"
	StorageFile     StorageKind = "file"
	StorageMemory   StorageKind = "memory"
)

// Load parsea las env vars sobre Config.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv carga cualquier struct con tags `env`.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}

func (c Config) Storage() StorageKind {
	switch k := StorageKind(strings.ToLower(strings.TrimSpace(c.StorageName))); k {
	case StoragePostgres, StorageSQLite, StorageFile, StorageMemory:
		return k
	}

	switch {
	case strings.TrimSpace(c.DBDSN) != "":
		return StoragePostgres
	case strings.TrimSpace(c.SQLitePath) != "":
		return StorageSQLite
	case strings.TrimSpace(c.SnapshotFile) != "":
		return StorageFile
	default:
		return StorageMemory
	}
}
