package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slabguide/slab"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "slab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoadConfig_KeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeConfig(t, "geometry:\n  n_core: 3.5\n  thickness: 0.22\nsolver:\n  method: nelder-mead\n")
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3.5, cfg.Geometry.CoreIndex)
	assert.Equal(t, 0.22, cfg.Geometry.Thickness)
	assert.Equal(t, 1.0, cfg.Geometry.CladdingIndex)
	assert.Equal(t, 1.0, cfg.Geometry.Wavelength)
	assert.Equal(t, "nelder-mead", cfg.Solver.Method)
	assert.Equal(t, 400, cfg.Output.Points)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = loadConfig(writeConfig(t, "geometry: [1, 2"))
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"method":    func(c *Config) { c.Solver.Method = "simplex" },
		"unit":      func(c *Config) { c.Output.Unit = "grad" },
		"offset":    func(c *Config) { c.Solver.InitialOffset = -1 },
		"margin":    func(c *Config) { c.Solver.BoundMargin = -1 },
		"abs_tol":   func(c *Config) { c.Solver.AbsTol = 0 },
		"max_evals": func(c *Config) { c.Solver.MaxEvaluations = 2 },
		"tolerance": func(c *Config) { c.Solver.Tolerance = 0 },
		"points":    func(c *Config) { c.Output.Points = 1 },
	}
	for name, mutate := range cases {
		cfg := defaultConfig()
		mutate(&cfg)
		assert.Error(t, cfg.Validate(), name)
	}
	assert.NoError(t, defaultConfig().Validate())
}

func TestConfigGeometry(t *testing.T) {
	cfg := defaultConfig()
	g, err := cfg.geometry()
	require.NoError(t, err)
	assert.Equal(t, 1.5, g.CoreIndex)
	assert.True(t, g.Symmetric())

	cfg.Geometry.CladdingIndex = 1.6
	_, err = cfg.geometry()
	assert.ErrorIs(t, err, slab.ErrInvalidGeometry)
}

func TestResolve_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "geometry:\n  n_core: 2.0\n  thickness: 2.0\noutput:\n  unit: rad\n")
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	common := bindCommon(fs)
	require.NoError(t, fs.Parse([]string{"-config", path, "-thickness", "0.5"}))

	cfg, err := common.resolve(fs)
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.Geometry.CoreIndex, "file value kept")
	assert.Equal(t, 0.5, cfg.Geometry.Thickness, "flag wins")
	assert.Equal(t, "rad", cfg.Output.Unit)
}

func TestResolve_DefaultsWithoutFile(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	common := bindCommon(fs)
	require.NoError(t, fs.Parse([]string{"-method", "nm"}))
	cfg, err := common.resolve(fs)
	require.NoError(t, err)
	assert.Equal(t, "nm", cfg.Solver.Method)
	assert.Equal(t, defaultConfig().Geometry, cfg.Geometry)
}
