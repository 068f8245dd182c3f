package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server ServerConfig

	// Database Configuration
	Database DatabaseConfig

	// Auth Configuration
	Auth AuthConfig
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Port         string `envconfig:"SERVER_PORT" default:"8080"`
	Host         string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ReadTimeout  int    `envconfig:"SERVER_READ_TIMEOUT" default:"15"`
	WriteTimeout int    `envconfig:"SERVER_WRITE_TIMEOUT" default:"15"`
	Environment  string `envconfig:"ENVIRONMENT" default:"development"` // development, staging, production
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host         string `envconfig:"DB_HOST" default:"localhost"`
	Port         string `envconfig:"DB_PORT" default:"3306"`
	Username     string `envconfig:"DB_USER" default:"eduverse_user"`
	Password     string `envconfig:"DB_PASSWORD" default:""`
	DatabaseName string `envconfig:"DB_NAME" default:"eduverse_chat"`
	MaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns int    `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
}

// AuthConfig contains token verification configuration
type AuthConfig struct {
	JWTSecret string `envconfig:"JWT_SECRET" default:""`
	Issuer    string `envconfig:"JWT_ISSUER" default:"eduverse"`
}

// Load populates the configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}
