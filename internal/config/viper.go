// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	AI struct {
		Enabled        bool    `mapstructure:"enabled" yaml:"enabled"`
		Model          string  `mapstructure:"model" yaml:"model"`
		TimeoutSeconds int     `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		Temperature    float32 `mapstructure:"temperature" yaml:"temperature"`
		TopK           int32   `mapstructure:"top_k" yaml:"top_k"`
		TopP           float32 `mapstructure:"top_p" yaml:"top_p"`
		MaxTokens      int32   `mapstructure:"max_tokens" yaml:"max_tokens"`
		APIKey         string  `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`

	Data struct {
		Directory  string `mapstructure:"directory" yaml:"directory"`
		StorageKey string `mapstructure:"storage_key" yaml:"storage_key"`
	} `mapstructure:"data" yaml:"data"`

	User struct {
		Name string `mapstructure:"name" yaml:"name"`
	} `mapstructure:"user" yaml:"user"`

	Budget struct {
		MonthlyTotal float64 `mapstructure:"monthly_total" yaml:"monthly_total"`
	} `mapstructure:"budget" yaml:"budget"`

	Categorization struct {
		RulesFile string `mapstructure:"rules_file" yaml:"rules_file"`
	} `mapstructure:"categorization" yaml:"categorization"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then config file, then environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.flowpay")
	v.AddConfigPath(".flowpay")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FLOWPAY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars; a broken file is not fatal.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// The API key is always read from the unprefixed environment variable.
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("ai.enabled", true)
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout_seconds", 30)
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.top_k", 40)
	v.SetDefault("ai.top_p", 0.95)
	v.SetDefault("ai.max_tokens", 1024)

	v.SetDefault("data.directory", "")
	v.SetDefault("data.storage_key", "flowpay_expenses")

	v.SetDefault("user.name", "John Doe")

	v.SetDefault("budget.monthly_total", 45000)

	v.SetDefault("categorization.rules_file", "categories.yaml")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.AI.TimeoutSeconds <= 0 {
		return fmt.Errorf("invalid ai timeout: %d (must be positive)", config.AI.TimeoutSeconds)
	}

	if config.Data.StorageKey == "" {
		return fmt.Errorf("data storage key must not be empty")
	}

	if config.Budget.MonthlyTotal < 0 {
		return fmt.Errorf("invalid monthly budget: %f (must not be negative)", config.Budget.MonthlyTotal)
	}

	return nil
}
