package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverDuckDB   = "duckdb"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the service
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

type ServerConfig struct {
	Port               int           `mapstructure:"port"`
	Host               string        `mapstructure:"host"`
	ReadTimeout        time.Duration `mapstructure:"read_timeout"`
	WriteTimeout       time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout    time.Duration `mapstructure:"shutdown_timeout"`
	CORSAllowedOrigins []string      `mapstructure:"cors_allowed_origins"`
}

type DatabaseConfig struct {
	Driver   string         `mapstructure:"driver"`
	DuckDB   DuckDBConfig   `mapstructure:"duckdb"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

type DuckDBConfig struct {
	Path string `mapstructure:"path"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// RedisConfig configures the optional statistics cache
type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Load initializes configuration from an optional .env file, environment
// variables and config file
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("READINGS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	v.AutomaticEnv()

	setDefaults(v)

	// Load config file if exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.cors_allowed_origins", []string{"*"})

	// Database defaults
	v.SetDefault("database.driver", DriverDuckDB)
	v.SetDefault("database.duckdb.path", "database.db")
	v.SetDefault("database.postgres.host", "")
	v.SetDefault("database.postgres.port", 5432)
	v.SetDefault("database.postgres.user", "")
	v.SetDefault("database.postgres.password", "")
	v.SetDefault("database.postgres.dbname", "")
	v.SetDefault("database.postgres.sslmode", "disable")

	// Redis defaults
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "5m")
}

func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", config.Server.Port)
	}
	switch config.Database.Driver {
	case DriverDuckDB:
		if config.Database.DuckDB.Path == "" {
			return fmt.Errorf("duckdb path is required")
		}
	case DriverPostgres:
		if config.Database.Postgres.Host == "" {
			return fmt.Errorf("postgres host is required")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", config.Database.Driver)
	}
	if config.Redis.Enabled {
		if config.Redis.Host == "" {
			return fmt.Errorf("redis host is required when the cache is enabled")
		}
		if config.Redis.TTL <= 0 {
			return fmt.Errorf("redis ttl must be positive")
		}
	}
	return nil
}
