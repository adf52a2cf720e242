// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	CORS     CORSConfig     `yaml:"cors"`
	Logging  LoggingConfig  `yaml:"logging"`
	Scoring  ScoringConfig  `yaml:"scoring"`
}

// ServerConfig defines the Echo HTTP server settings. A rate_limit of zero
// disables request rate limiting.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	RateLimit    float64       `yaml:"rate_limit"` // sustained requests per second
	RateBurst    int           `yaml:"rate_burst"`
}

// DatabaseConfig defines PostgreSQL connection settings. The database is
// optional: when neither a URL nor a host is configured the process runs on
// the in-memory store instead. The choice is made once at startup and holds
// for the process lifetime.
type DatabaseConfig struct {
	URL      string `yaml:"url"` // full DSN; wins over the discrete fields
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// Enabled reports whether a relational backend is configured.
func (d *DatabaseConfig) Enabled() bool {
	return d.URL != "" || d.Host != ""
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// ScoringConfig controls the background rescore job. A zero interval
// disables it; scoring then happens only on demand.
type ScoringConfig struct {
	RescoreInterval time.Duration `yaml:"rescore_interval"`
}

// CORSConfig defines allowed origins for the local front end.
type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a configuration suitable for running without a config
// file: in-memory store, all defaults applied. DATABASE_URL, when set,
// switches the process to the relational backend, mirroring the demo's
// original env-driven backend selection.
func Default() *Config {
	cfg := &Config{}
	cfg.Database.URL = os.Getenv("DATABASE_URL")
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyCORSDefaults(&cfg.CORS)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
	if s.RateLimit > 0 && s.RateBurst == 0 {
		s.RateBurst = int(s.RateLimit)
		if s.RateBurst < 1 {
			s.RateBurst = 1
		}
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyCORSDefaults(c *CORSConfig) {
	if len(c.AllowOrigins) == 0 {
		// Local Next.js dev server.
		c.AllowOrigins = []string{"http://localhost:3000"}
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	// The discrete database fields only matter when no URL is given and a
	// host indicates the relational backend is wanted.
	if cfg.Database.URL == "" && cfg.Database.Host != "" {
		if cfg.Database.Name == "" {
			errs = append(errs, fmt.Errorf("database.name is required when database.host is set"))
		}
		if cfg.Database.User == "" {
			errs = append(errs, fmt.Errorf("database.user is required when database.host is set"))
		}
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be text or json (got %q)", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}
