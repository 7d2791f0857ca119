// Package config holds the settings of all converters.
//
// Settings come from built-in defaults, optionally overridden by a YAML file
// (nonoconv.yaml, or the file named by NONOCONV_CONFIG), and finally by
// command line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/nonoconv/internal/detection"
	"github.com/ironsheep/nonoconv/internal/imaging"
)

// Environment variables.
const (
	EnvConfigFile = "NONOCONV_CONFIG"
	EnvLogLevel   = "NONOCONV_LOG_LEVEL"
)

// DefaultFile is read when EnvConfigFile is unset.
const DefaultFile = "nonoconv.yaml"

// CopyrightNotice is the description stored in recognized levels.
const CopyrightNotice = "Copyright Angela und Otto Janko. Online: http://www.janko.at/Raetsel/Nonogramme/index.htm"

type Config struct {
	Recognono Recognono `yaml:"recognono"`
	Picross   Picross   `yaml:"picross"`
	PO        PO        `yaml:"po2props"`
}

// Recognono configures the general image converter.
type Recognono struct {
	Input       string `yaml:"input"`
	Output      string `yaml:"output"`
	Extension   string `yaml:"extension"`
	Description string `yaml:"description"`

	// Tiered sorts levels into small/medium/large subdirectories.
	Tiered bool `yaml:"tiered"`
	DryRun bool `yaml:"dry_run"`

	// Preview writes a PNG rendering of every level next to the output.
	Preview      bool `yaml:"preview"`
	PreviewScale int  `yaml:"preview_scale"`

	// Policy is "dark" or "light".
	Policy string `yaml:"policy"`

	// Report names a YAML file receiving the batch report.
	Report string `yaml:"report"`

	Detection detection.Options `yaml:"detection"`
}

// Picross configures the handheld screenshot converter.
type Picross struct {
	Input     string `yaml:"input"`
	Output    string `yaml:"output"`
	Extension string `yaml:"extension"`
}

// PO configures the catalog converter.
type PO struct {
	OutputDir string `yaml:"output_dir"`
	Latin1    bool   `yaml:"latin1"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Recognono: Recognono{
			Input:        "./input/",
			Output:       "output",
			Extension:    ".gif",
			Description:  CopyrightNotice,
			Tiered:       true,
			PreviewScale: 1,
			Policy:       "dark",
			Detection: detection.Options{
				ProbeOffset: detection.DefaultProbeOffset,
				MaxProbe:    detection.DefaultMaxProbe,
				MaxPlayable: detection.DefaultMaxPlayable,
				SampleMode:  imaging.SampleAuto,
			},
		},
		Picross: Picross{
			Input:     "../ScreenShots/",
			Output:    "../LevelData/",
			Extension: ".png",
		},
	}
}

// File returns the configuration file to read.
func File() string {
	if f := os.Getenv(EnvConfigFile); f != "" {
		return f
	}
	return DefaultFile
}

// Load returns the defaults overridden by the YAML file at path. A missing
// file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if _, err := imaging.ParseSampleMode(string(c.Recognono.Detection.SampleMode)); err != nil {
		return err
	}
	if _, err := detection.ParseFillPolicy(c.Recognono.Policy); err != nil {
		return err
	}
	if c.Recognono.PreviewScale < 1 {
		return fmt.Errorf("invalid preview scale %d", c.Recognono.PreviewScale)
	}
	return nil
}

// DetectionOptions returns the detector options with the fill policy
// resolved.
func (r *Recognono) DetectionOptions() (detection.Options, error) {
	opts := r.Detection
	policy, err := detection.ParseFillPolicy(r.Policy)
	if err != nil {
		return opts, err
	}
	opts.Policy = policy
	mode, err := imaging.ParseSampleMode(string(opts.SampleMode))
	if err != nil {
		return opts, err
	}
	opts.SampleMode = mode
	return opts, nil
}
