// Package config loads application configuration with viper.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/kyunghwan/beans"
	"github.com/kyunghwan/beans/internal/event"
)

// EnvPrefix prefixes environment overrides, e.g. BEANS_VALIDATION_MODE.
const EnvPrefix = "BEANS"

// Config is the application configuration.
type Config struct {
	Log        Log
	Validation Validation
}

// Log configures the logger.
type Log struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string

	// Format is "json" or "console".
	Format string
}

// Validation selects the active validator and its lifetime.
type Validation struct {
	Mode     event.Mode
	Lifetime beans.Lifetime
}

// Load reads the configuration file at pathFile. The file type is inferred
// from its extension. Environment variables override file values.
func Load(pathFile string) (*Config, error) {
	v := newViper()

	filename := filepath.Base(pathFile)
	v.AddConfigPath(filepath.Dir(pathFile))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", pathFile, err)
	}

	return decode(v)
}

// LoadFromBytes reads configuration from memory. configType is a format
// supported by viper such as "yaml" or "json".
func LoadFromBytes(configType string, data []byte) (*Config, error) {
	if strings.TrimSpace(configType) == "" {
		return nil, errors.New("config type is required")
	}

	v := newViper()
	v.SetConfigType(configType)

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return decode(v)
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg, err := decode(newViper())
	if err != nil {
		// Defaults are constants; failing here is a programming error.
		panic(err)
	}
	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("validation.mode", string(event.ModeRules))
	v.SetDefault("validation.lifetime", "singleton")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func decode(v *viper.Viper) (*Config, error) {
	mode, err := event.ParseMode(v.GetString("validation.mode"))
	if err != nil {
		return nil, fmt.Errorf("validation.mode: %w", err)
	}

	lifetime, err := beans.ParseLifetime(v.GetString("validation.lifetime"))
	if err != nil {
		return nil, fmt.Errorf("validation.lifetime: %w", err)
	}

	level := v.GetString("log.level")
	if _, err := zapcore.ParseLevel(level); err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}

	format := strings.ToLower(v.GetString("log.format"))
	if format != "json" && format != "console" {
		return nil, fmt.Errorf("log.format: unknown format %q", format)
	}

	return &Config{
		Log: Log{
			Level:  level,
			Format: format,
		},
		Validation: Validation{
			Mode:     mode,
			Lifetime: lifetime,
		},
	}, nil
}
