package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default configuration values applied before files and environment are read.
const (
	defaultPort           = 8080
	defaultLogLevel       = "info"
	defaultModelName      = "gemini-2.0-flash"
	defaultTimeoutSeconds = 60
)

// Load reads configuration from an optional config.yaml in the working
// directory and from environment variables with the FLASHDECK_ prefix
// (e.g. FLASHDECK_SERVER_PORT, FLASHDECK_LLM_MODEL_NAME). Environment
// variables take precedence over file values.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", defaultPort)
	v.SetDefault("server.log_level", defaultLogLevel)
	v.SetDefault("llm.model_name", defaultModelName)
	v.SetDefault("llm.prompt_template_path", "")
	v.SetDefault("llm.timeout_seconds", defaultTimeoutSeconds)

	// Optional config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Missing file is fine; environment and defaults cover everything.
	}

	// Environment variables
	v.SetEnvPrefix("FLASHDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
