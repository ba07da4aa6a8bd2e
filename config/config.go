// Package config loads session configuration from files and the
// environment and resolves it to a backend kind plus connection descriptor.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kynelabs/dbsession/adapter"
)

// Config is the user-facing configuration for one database session.
type Config struct {
	Kind     string `mapstructure:"kind"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	DBName   string `mapstructure:"dbname"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	// TimeoutSeconds bounds backend round trips; 0 keeps the session default.
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// LoadEnv loads variables from the given .env files (or ./.env when none
// are named) into the process environment. Missing files are not an error;
// explicit environment variables win over file contents.
func LoadEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// Load reads configuration from the file at path (any format viper
// understands) with DBSESSION_-prefixed environment variables overriding
// file values. An empty path skips the file and reads the environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DBSESSION")
	v.AutomaticEnv()
	v.SetDefault("host", "localhost")

	// AutomaticEnv alone does not surface env-only keys through Unmarshal;
	// binding each key does.
	for _, key := range []string{"kind", "host", "port", "dbname", "user", "password", "timeout_seconds"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// BackendKind resolves the configured kind string.
func (c *Config) BackendKind() (adapter.Kind, error) {
	if c.Kind == "" {
		return adapter.None, fmt.Errorf("config missing backend kind")
	}
	return adapter.KindFromString(c.Kind)
}

// Descriptor renders the configuration as a connection descriptor string.
func (c *Config) Descriptor() string {
	return adapter.Descriptor{
		Host:     c.Host,
		Port:     c.Port,
		DBName:   c.DBName,
		User:     c.User,
		Password: c.Password,
	}.String()
}

// Timeout returns the configured operation timeout, or 0 when unset.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
