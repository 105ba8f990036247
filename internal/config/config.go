package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	BackendCSV      = "csv"
	BackendPostgres = "postgres"
)

// Config holds all runtime configuration, resolved once at startup from the
// environment (plus an optional config.yaml). Components receive the values
// they need explicitly; nothing reads the environment after startup.
type Config struct {
	AppPort string `mapstructure:"APP_PORT"`
	Env     string `mapstructure:"ENV"`

	// DataBackend selects where sleep records are read from: "csv" or
	// "postgres". SleepDataPath feeds the CSV repository, DatabaseURL the
	// Postgres one.
	DataBackend   string `mapstructure:"DATA_BACKEND"`
	SleepDataPath string `mapstructure:"SLEEP_DATA_PATH"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`

	StaticDir string `mapstructure:"STATIC_DIR"`

	// Rate limiting is enabled only when REDIS_ADDR is set.
	RedisAddr         string `mapstructure:"REDIS_ADDR"`
	RedisPassword     string `mapstructure:"REDIS_PASSWORD"`
	RedisDB           int    `mapstructure:"REDIS_DB"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("DATA_BACKEND", BackendCSV)
	viper.SetDefault("SLEEP_DATA_PATH", "sleep_data/sleep_cycle_productivity.csv")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("STATIC_DIR", "")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)

	// A config file is optional; env vars alone are enough.
	_ = viper.ReadInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if cfg.DataBackend != BackendCSV && cfg.DataBackend != BackendPostgres {
		return nil, fmt.Errorf("unknown DATA_BACKEND %q (must be %q or %q)", cfg.DataBackend, BackendCSV, BackendPostgres)
	}
	if cfg.DataBackend == BackendPostgres && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATA_BACKEND=postgres requires DATABASE_URL")
	}

	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
