package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		assert.NoError(t, run([]string{"--mode", "tags", "--lifetime", "prototype"}))
	})

	t.Run("config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "beans.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\nvalidation:\n  mode: manual\n"), 0o600))

		assert.NoError(t, run([]string{"-c", path}))
	})

	t.Run("print schema", func(t *testing.T) {
		assert.NoError(t, run([]string{"--print-schema"}))
	})

	t.Run("invalid flags", func(t *testing.T) {
		assert.Error(t, run([]string{"--mode", "reflection"}))
		assert.Error(t, run([]string{"--lifetime", "scoped"}))
		assert.Error(t, run([]string{"--unknown"}))
		assert.Error(t, run([]string{"-c", filepath.Join(t.TempDir(), "missing.yaml")}))
	})
}
