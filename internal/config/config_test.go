package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/nonoconv/internal/detection"
	"github.com/ironsheep/nonoconv/internal/imaging"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nonoconv.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "./input/", cfg.Recognono.Input)
	assert.Equal(t, ".gif", cfg.Recognono.Extension)
	assert.Equal(t, detection.DefaultProbeOffset, cfg.Recognono.Detection.ProbeOffset)
	assert.Equal(t, "../LevelData/", cfg.Picross.Output)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
recognono:
  input: scans
  policy: light
  detection:
    independent_axes: true
    sample_mode: luma
    max_playable: 30
po2props:
  latin1: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "scans", cfg.Recognono.Input)
	assert.Equal(t, "output", cfg.Recognono.Output, "unset keys keep defaults")
	assert.True(t, cfg.Recognono.Detection.IndependentAxes)
	assert.Equal(t, 30, cfg.Recognono.Detection.MaxPlayable)
	assert.Equal(t, detection.DefaultMaxProbe, cfg.Recognono.Detection.MaxProbe)
	assert.True(t, cfg.PO.Latin1)

	opts, err := cfg.Recognono.DetectionOptions()
	require.NoError(t, err)
	assert.Equal(t, imaging.SampleLuma, opts.SampleMode)
	require.NotNil(t, opts.Policy)
	assert.True(t, opts.Policy(200, 100), "light policy fills bright samples")
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":    "recognono: [",
		"bad policy":  "recognono:\n  policy: purple\n",
		"bad sample":  "recognono:\n  detection:\n    sample_mode: red\n",
		"bad preview": "recognono:\n  preview_scale: 0\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			require.Error(t, err)
		})
	}
}

func TestFile(t *testing.T) {
	t.Setenv(EnvConfigFile, "")
	assert.Equal(t, DefaultFile, File())

	t.Setenv(EnvConfigFile, "/etc/nonoconv.yaml")
	assert.Equal(t, "/etc/nonoconv.yaml", File())
}
