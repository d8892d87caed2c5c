package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, 2, cfg.Output.Precision)
	assert.Zero(t, cfg.Solver.MaxPasses)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, `
solver:
  max_passes: 7
  time_limit: 250ms
output:
  format: json
log:
  level: debug
batch:
  workers: 2
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Solver.MaxPasses)
	assert.Equal(t, 250*time.Millisecond, cfg.Solver.TimeLimit)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 2, cfg.Output.Precision, "untouched keys keep defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 2, cfg.Batch.Workers)

	opts := cfg.SolverOptions()
	assert.Equal(t, 7, opts.MaxPasses)
	assert.Equal(t, 250*time.Millisecond, opts.TimeLimit)
}

func TestLoad_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(dir, "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(writeFile(t, "solver: [unclosed"))
	require.Error(t, err)

	_, err = Load(writeFile(t, "output:\n  format: xml\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeFile(t, "solver:\n  max_passes: -1\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeFile(t, "batch:\n  workers: 0\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)
}
