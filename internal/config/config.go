package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all LLM integration related settings.
//
// The API key is deliberately absent: the credential is supplied by the user
// per session through the credential gate, never from configuration.
type LLMConfig struct {
	// ModelName is the fixed Gemini model identifier used for every request.
	ModelName string `mapstructure:"model_name" validate:"required"`

	// PromptTemplatePath optionally overrides the built-in prompt template.
	PromptTemplatePath string `mapstructure:"prompt_template_path"`

	// TimeoutSeconds bounds a single upstream call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"gte=0"`
}
