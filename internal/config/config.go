// Package config loads runtime settings for the cafe demo.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/yourorg/cafe-checkout/internal/logging"
)

const configFileName = "cafe.json"

type Config struct {
	ServiceName    string  `mapstructure:"service_name"`
	Env            string  `mapstructure:"env"`
	LogLevel       string  `mapstructure:"log_level"`
	CurrencySymbol string  `mapstructure:"currency_symbol"`
	Tracing        Tracing `mapstructure:"tracing"`
	Metrics        Metrics `mapstructure:"metrics"`
}

type Tracing struct {
	Enabled bool `mapstructure:"enabled"`
}

type Metrics struct {
	Enabled bool `mapstructure:"enabled"`
}

// ReadConfig loads cafe.json from CAFE_CONFIG_DIR (or the working directory)
// when present, applies defaults, and lets CAFE_* environment variables
// override any key.
func ReadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigType("json")

	v.SetEnvPrefix("CAFE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	path := filepath.Join(getEnv("CAFE_CONFIG_DIR", "."), configFileName)
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := validateFile(path); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if _, err := logging.ParseLevel(config.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid log_level: %w", err)
	}

	return &config, nil
}

func validateFile(path string) error {
	doc, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	valid, violations, err := ValidateDocument(doc)
	if err != nil {
		return fmt.Errorf("validate config file %s: %w", path, err)
	}
	if !valid {
		return fmt.Errorf("invalid config file %s: %s", path, FormatErrors(violations))
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("service_name", "cafe-checkout")
	v.SetDefault("env", "local")
	v.SetDefault("log_level", "info")
	v.SetDefault("currency_symbol", "₸")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("metrics.enabled", true)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Default returns the configuration ReadConfig produces with no file and no
// environment overrides.
func Default() *Config {
	return &Config{
		ServiceName:    "cafe-checkout",
		Env:            "local",
		LogLevel:       "info",
		CurrencySymbol: "₸",
		Metrics:        Metrics{Enabled: true},
	}
}
