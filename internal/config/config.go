package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Verbosity levels for error responses.
const (
	VerbosityMinimal  = "minimal"
	VerbosityStandard = "standard"
	VerbosityVerbose  = "verbose"
)

// Config holds the application's configuration.
type Config struct {
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Auth struct {
		JWTSecret         string `yaml:"jwt_secret"`
		TokenTTLSeconds   int64  `yaml:"token_ttl_seconds"`
		BcryptCost        int    `yaml:"bcrypt_cost"`
		ProtectTechniques bool   `yaml:"protect_techniques"`
	} `yaml:"auth"`
	Errors struct {
		Verbosity string `yaml:"verbosity"`
	} `yaml:"errors"`
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
}

// LoadConfig reads configuration from the specified YAML file.
// Secrets may be overridden through the environment (DATABASE_URL,
// JWT_SECRET, SERVER_PORT), so the YAML file can be committed without them.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	config.Auth.ProtectTechniques = true

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		config.Database.URL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.Auth.JWTSecret = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		config.Server.Port = v
	}

	applyDefaults(config)

	if err := validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

func applyDefaults(config *Config) {
	if config.Server.Port == "" {
		config.Server.Port = ":8080"
	}
	if config.Auth.TokenTTLSeconds == 0 {
		config.Auth.TokenTTLSeconds = 3600
	}
	if config.Auth.BcryptCost == 0 {
		config.Auth.BcryptCost = 10
	}
	if config.Errors.Verbosity == "" {
		config.Errors.Verbosity = VerbosityMinimal
	}
}

func validate(config *Config) error {
	if config.Database.URL == "" {
		return fmt.Errorf("database url is required")
	}
	if config.Auth.JWTSecret == "" {
		return fmt.Errorf("jwt secret is required")
	}
	switch config.Errors.Verbosity {
	case VerbosityMinimal, VerbosityStandard, VerbosityVerbose:
	default:
		return fmt.Errorf("unknown error verbosity %q", config.Errors.Verbosity)
	}
	return nil
}

// TokenTTL returns the configured access token lifetime.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.Auth.TokenTTLSeconds) * time.Second
}
