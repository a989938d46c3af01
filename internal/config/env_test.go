package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	e, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "ternary369", e.Sim)
	assert.Equal(t, 81, e.Width)
	assert.Equal(t, 100, e.Steps)
	assert.False(t, e.Random)
	assert.Equal(t, "info", e.LogLevel)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TERNARY_STEPS=40\nTERNARY_WIDTH=21\n"), 0o600))
	t.Setenv("TERNARY_WIDTH", "31")
	t.Setenv("TERNARY_RANDOM", "true")
	// godotenv sets variables on the process; drop the one it adds.
	t.Cleanup(func() { os.Unsetenv("TERNARY_STEPS") })

	e, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 31, e.Width)
	assert.Equal(t, 40, e.Steps)
	assert.True(t, e.Random)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("TERNARY_WIDTH", "wide")
	_, err := Load("")
	assert.Error(t, err)
}
