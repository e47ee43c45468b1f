package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "/usr/local/lib/sl/stdlib.lisp", cfg.Stdlib.Path)
	assert.False(t, cfg.Stdlib.Skip)
	assert.Equal(t, 4096, cfg.Pool.InitialCells)
	assert.Equal(t, 4096, cfg.Pool.GrowCells)
	assert.Empty(t, cfg.Trace.Names)
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
[stdlib]
skip = true

[pool]
initial_cells = 8192

[trace]
names = ["fact", "fib"]
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Stdlib.Skip)
	assert.Equal(t, "/usr/local/lib/sl/stdlib.lisp", cfg.Stdlib.Path)
	assert.Equal(t, 8192, cfg.Pool.InitialCells)
	assert.Equal(t, 4096, cfg.Pool.GrowCells)
	assert.Equal(t, []string{"fact", "fib"}, cfg.Trace.Names)
}

func TestLoadInvalidTomlIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
