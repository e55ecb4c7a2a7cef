package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Storage driver names accepted in STORAGE_DRIVER.
const (
	DriverMongo    = "mongo"
	DriverJSONFile = "jsonfile"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// Storage selects the persistence backend: "mongo" or "jsonfile".
	Storage string `env:"STORAGE_DRIVER, default=jsonfile"`
	// DataDir is where the jsonfile driver keeps its collections.
	DataDir string `env:"DATA_DIR, default=data"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=room_booking"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
	// LockEnabled switches the per-room booking lock from the in-process
	// keyed mutex to a Redis lock shared across instances.
	LockEnabled bool `env:"REDIS_LOCK_ENABLED, default=false"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Storage != DriverMongo && cfg.Storage != DriverJSONFile {
		return nil, fmt.Errorf("config: unknown STORAGE_DRIVER %q", cfg.Storage)
	}
	return &cfg, nil
}
