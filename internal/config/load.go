package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the loader reads,
// e.g. SPECTRUM_SERVER_PORT for server.port.
const EnvPrefix = "SPECTRUM"

// Environment variable names kept from the first deployment of the service.
// They are consulted after the prefixed names.
const (
	legacyAPIKeyEnv = "GENAI_API_KEY"
	legacyPortEnv   = "PORT"
)

// Load configuration from a .env file, an optional config.yaml and environment
// variables. Environment variables take precedence over values from the config
// file, which take precedence over built-in defaults.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	// A missing .env file is the normal case outside local development.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_format", "json")
	v.SetDefault("server.log_file", "")
	v.SetDefault("server.log_file_max_size_mb", 50)
	v.SetDefault("server.log_file_max_backups", 3)
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("server.max_request_body_bytes", 1<<16)

	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.max_age_seconds", 300)

	v.SetDefault("llm.model_name", "gemini-2.5-flash-preview-05-20")
	v.SetDefault("llm.temperature", 1.25)
	v.SetDefault("llm.max_output_tokens", 1024)
	v.SetDefault("llm.json_response", true)
	v.SetDefault("llm.request_timeout_seconds", 60)
	v.SetDefault("llm.prompt_template_path", "")
}

// bindEnv registers keys that have no default (so AutomaticEnv alone would
// not surface them to Unmarshal) and the legacy variable names.
func bindEnv(v *viper.Viper) error {
	bindings := [][]string{
		{"llm.gemini_api_key", EnvPrefix + "_LLM_GEMINI_API_KEY", legacyAPIKeyEnv},
		{"server.port", EnvPrefix + "_SERVER_PORT", legacyPortEnv},
	}

	for _, b := range bindings {
		if err := v.BindEnv(b...); err != nil {
			return fmt.Errorf("failed to bind env for %s: %w", b[0], err)
		}
	}

	return nil
}
