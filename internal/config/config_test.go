package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyunghwan/beans"
	"github.com/kyunghwan/beans/internal/config"
	"github.com/kyunghwan/beans/internal/event"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, event.ModeRules, cfg.Validation.Mode)
	assert.Equal(t, beans.Singleton, cfg.Validation.Lifetime)
}

func TestLoadFromBytes(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		cfg, err := config.LoadFromBytes("yaml", []byte(`
log:
  level: debug
  format: json
validation:
  mode: manual
  lifetime: Prototype
`))
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, event.ModeManual, cfg.Validation.Mode)
		assert.Equal(t, beans.Prototype, cfg.Validation.Lifetime)
	})

	t.Run("json with defaults", func(t *testing.T) {
		cfg, err := config.LoadFromBytes("json", []byte(`{"validation": {"mode": "tags"}}`))
		require.NoError(t, err)

		assert.Equal(t, event.ModeTags, cfg.Validation.Mode)
		assert.Equal(t, beans.Singleton, cfg.Validation.Lifetime)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("invalid mode", func(t *testing.T) {
		_, err := config.LoadFromBytes("yaml", []byte("validation:\n  mode: reflection\n"))
		assert.ErrorContains(t, err, "validation.mode")
	})

	t.Run("invalid lifetime", func(t *testing.T) {
		_, err := config.LoadFromBytes("yaml", []byte("validation:\n  lifetime: scoped\n"))

		var lifetimeErr beans.LifetimeError
		require.ErrorAs(t, err, &lifetimeErr)
		assert.Equal(t, "scoped", lifetimeErr.Value)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := config.LoadFromBytes("yaml", []byte("log:\n  format: xml\n"))
		assert.ErrorContains(t, err, "log.format")
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := config.LoadFromBytes("yaml", []byte("log:\n  level: loud\n"))
		assert.ErrorContains(t, err, "log.level")
	})

	t.Run("level is case-insensitive", func(t *testing.T) {
		cfg, err := config.LoadFromBytes("yaml", []byte("log:\n  level: WARN\n"))
		require.NoError(t, err)
		assert.Equal(t, "WARN", cfg.Log.Level)
	})

	t.Run("type required", func(t *testing.T) {
		_, err := config.LoadFromBytes(" ", nil)
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "beans.yaml")
	require.NoError(t, os.WriteFile(file, []byte("validation:\n  mode: manual\n"), 0o600))

	t.Run("file", func(t *testing.T) {
		cfg, err := config.Load(file)
		require.NoError(t, err)
		assert.Equal(t, event.ModeManual, cfg.Validation.Mode)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("BEANS_VALIDATION_MODE", "tags")
		t.Setenv("BEANS_VALIDATION_LIFETIME", "prototype")

		cfg, err := config.Load(file)
		require.NoError(t, err)
		assert.Equal(t, event.ModeTags, cfg.Validation.Mode)
		assert.Equal(t, beans.Prototype, cfg.Validation.Lifetime)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(dir, "missing.yaml"))
		assert.Error(t, err)
	})
}

func TestSchema(t *testing.T) {
	data, err := config.Schema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))

	assert.Equal(t, "beans configuration", schema["title"])
	properties, ok := schema["properties"].(map[string]any)
	require.True(t, ok, "top-level struct is expanded")
	assert.Contains(t, properties, "log")
	assert.Contains(t, properties, "validation")

	for _, want := range []string{`"manual"`, `"tags"`, `"prototype"`, `"json"`} {
		assert.Contains(t, string(data), want)
	}
}
