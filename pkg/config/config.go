package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every FoodDash environment variable.
const EnvPrefix = "FOODDASH"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Store driver names.
const (
	StoreDriverSQLite = "sqlite"
	StoreDriverMemory = "memory"
)

type Config struct {
	App   AppConfig
	Store StoreConfig
	Seed  SeedConfig
	CORS  CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Store.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FOODDASH_APP_ENV" default:"dev"`
	Port         string `envconfig:"FOODDASH_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"FOODDASH_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FOODDASH_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StoreConfig selects the persistence medium for the key-value store.
// The memory driver keeps everything in process and is the fallback when
// no durable medium is available.
type StoreConfig struct {
	Driver string `envconfig:"FOODDASH_STORE_DRIVER" default:"sqlite"`
	Path   string `envconfig:"FOODDASH_STORE_PATH" default:"fooddash.db"`
}

func (s StoreConfig) validate() error {
	switch s.Driver {
	case StoreDriverSQLite, StoreDriverMemory:
	default:
		return fmt.Errorf("unknown store driver %q", s.Driver)
	}
	if s.Driver == StoreDriverSQLite && strings.TrimSpace(s.Path) == "" {
		return fmt.Errorf("store path is required for the sqlite driver")
	}
	return nil
}

type SeedConfig struct {
	Disable bool `envconfig:"FOODDASH_SEED_DISABLE" default:"false"`
}

type CORSConfig struct {
	ExtraOrigins []string `envconfig:"FOODDASH_CORS_EXTRA_ORIGINS"`
}
